package main

import (
	"strings"

	"github.com/spf13/pflag"
)

// splitKnownArgs partitions raw arguments into tokens owned by fs and
// tokens to be forwarded verbatim to the worker. Everything after a bare
// "--" is forwarded. An unknown flag carries its detached value along when
// the following token does not look like a flag. Token order is preserved
// within each partition.
func splitKnownArgs(fs *pflag.FlagSet, args []string) (known, passthrough []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			passthrough = append(passthrough, args[i+1:]...)
			return known, passthrough
		}

		var flag *pflag.Flag
		hasInlineValue := false
		switch {
		case strings.HasPrefix(arg, "--"):
			name := strings.TrimPrefix(arg, "--")
			if eq := strings.Index(name, "="); eq >= 0 {
				name = name[:eq]
				hasInlineValue = true
			}
			flag = fs.Lookup(name)
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flag = fs.ShorthandLookup(arg[1:2])
			hasInlineValue = len(arg) > 2 // shorthand with attached value
		default:
			known = append(known, arg)
			continue
		}

		if flag == nil {
			passthrough = append(passthrough, arg)
			if !hasInlineValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				passthrough = append(passthrough, args[i])
			}
			continue
		}

		known = append(known, arg)
		takesValue := flag.NoOptDefVal == "" // boolean flags never consume the next token
		if !hasInlineValue && takesValue && i+1 < len(args) {
			i++
			known = append(known, args[i])
		}
	}
	return known, passthrough
}
