// Command claygd is the Monte-Carlo sweep front-end for the decoder core
// (§6): it builds decoding graphs, injects random physical and idling
// errors, runs one or more decoders, and reports logical error rates and
// decoding-step histograms.
package main

import "os"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
