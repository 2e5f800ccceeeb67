package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/pdctl/internal/core/domain"
)

type intentionFlag struct {
	code  rune
	name  string
	usage string
}

var intentionFlags = []intentionFlag{
	{'I', "identity", "Select the identity intention"},
	{'O', "optimal", "Select the optimal intention"},
	{'o', "portable", "Select the portable intention"},
	{'g', "debug", "Select the debug intention"},
	{'U', "auxiliary", "Select the auxiliary intention"},
	{'Y', "capture", "Select the capture intention"},
	{'P', "profile", "Select the profile intention"},
	{'C', "coverage", "Select the coverage intention"},
	{domain.CodeAll, "all", "Select every intention"},
	{domain.CodeExclude, "exclude", "Exclude the selected intentions instead"},
}

func addIntentionFlags(cmd *cobra.Command) {
	for _, f := range intentionFlags {
		cmd.Flags().BoolP(f.name, string(f.code), false, f.usage)
	}
	cmd.Flags().StringSlice("intentions", nil, "Comma separated intention names, e.g. debug,optimal")
}

// intentions returns the selected intentions in rank order, or nil when no intention flag is set.
// Exclude mode applies to both the letter flags and --intentions.
func intentions(cmd *cobra.Command) ([]domain.Intention, error) {
	exclude, _ := cmd.Flags().GetBool("exclude")

	var codes strings.Builder
	for _, f := range intentionFlags {
		if f.code == domain.CodeExclude {
			continue
		}
		if on, _ := cmd.Flags().GetBool(f.name); on {
			codes.WriteRune(f.code)
		}
	}

	var selected []domain.Intention
	if codes.Len() > 0 {
		in, err := domain.SelectIntentions(codes.String())
		if err != nil {
			return nil, err
		}
		selected = in
	}

	if names, _ := cmd.Flags().GetStringSlice("intentions"); len(names) > 0 {
		in, err := domain.ParseIntentions(names)
		if err != nil {
			return nil, err
		}
		selected = domain.SortIntentions(append(selected, in...))
	}

	if exclude {
		return domain.ExcludeIntentions(selected), nil
	}
	return selected, nil
}
