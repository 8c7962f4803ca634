// Package profile starts optional runtime profiling with
// [github.com/pkg/profile].
//
// Profiling is compiled in only with the pprof build tag:
//
//	go build -tags pprof
//	morph --pprof-mode cpu --text '{{ $x }}' -D x=1
//	go tool pprof ~/.cache/morph/pprof/cpu.pprof
//
// Without the tag [Modes] is empty and [Config.Start] always returns a no-op
// stopper, so callers never need build tags of their own.
package profile
