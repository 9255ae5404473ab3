// Package cli implements the wheel command-line interface.
//
// Commands are cobra.Command instances that parse flags into an options
// struct and hand off to a plain function, so the work is testable without
// going through cobra:
//
//	wheel               - Interactive wheel (Bubble Tea, alt screen)
//	wheel pick [names]  - Spin once and print the winner
//	wheel init          - Write a .wheel.yaml seed file
//	wheel version       - Print version information
//	wheel completion    - Generate shell completion scripts
//
// # Startup
//
// Every command that spins follows the same path: find and load
// .wheel.yaml (config.LoadOrDefault), validate it, apply flag overrides,
// then build a wheel.Wheel seeded with the config's options followed by
// any --option flags or positional names.
//
// # Errors
//
// Commands return *errors.Error values. Execute prints them once and exits
// with status 1. Unknown commands get a pointer to --help.
package cli
