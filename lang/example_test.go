package lang_test

import (
	"fmt"
	"time"

	"github.com/ardnew/morph/lang"
)

func ExampleRender() {
	data := map[string]any{
		"customer": map[string]any{"name": "Alex"},
		"total":    "1234.5",
		"due":      time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC),
	}

	fmt.Println(lang.Render(
		"Dear {{ if($customer.name, $customer.name, 'customer') }}, "+
			"please pay {{ format($total, '0.00') }} by {{ $due }}.",
		data,
		lang.WithDefaultDateFormat("DD.MM.YYYY"),
	))
	// Output:
	// Dear Alex, please pay 1234.50 by 05.10.2025.
}

func ExampleResolve() {
	data := map[string]any{
		"items": []any{
			map[string]any{"sku": "A-1"},
			map[string]any{"sku": "B-2"},
		},
	}

	fmt.Printf("%q %q\n",
		lang.Resolve(data, "items.1.sku").Text(),
		lang.Resolve(data, "items.9.sku").Text(),
	)
	// Output:
	// "B-2" ""
}
