// Command scrubline previews and inspects scroll-scrubbed page variants.
//
//	scrubline preview [--variant exit] [--overlay] [--script run.json]
//	scrubline term [--variant exit-eased]
//	scrubline trace [--variant edge-stop] [--width 1200] [--steps 12]
//	scrubline config sample | init | validate
//
// Every command reads ~/.config/scrubline/config.toml (or --config) when it
// exists; --variant replaces the file's scene with a built-in preset.
package main
