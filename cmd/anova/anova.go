// anova reads sample groups from stdin, one group per line as
// whitespace-separated numbers, and reports a one-way analysis of
// variance along with Tukey-Kramer pairwise comparisons of the group
// means.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mlowell/go-oneway/stats"
)

var alpha = flag.Float64("alpha", stats.DefaultAlpha, "family-wise significance `level` for pairwise comparisons")

func main() {
	flag.Parse()

	groups := readInput(os.Stdin)

	r, err := stats.OneWayANOVA(groups)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%-8s %12s %5s %12s %9s %9s\n", "source", "SS", "df", "MS", "F", "p")
	fmt.Printf("%-8s %12.6g %5.6g %12.6g %9.4g %9.4g\n", "between", r.SSB, r.DFB, r.MSB, r.F, r.P)
	fmt.Printf("%-8s %12.6g %5.6g %12.6g\n", "within", r.SSE, r.DFE, r.MSE)
	fmt.Println()

	tk, err := stats.TukeyKramer(groups, r, *alpha)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("pairwise comparisons at alpha %g\n", tk.Alpha)
	fmt.Printf("%-9s %12s %12s\n", "pair", "|diff|", "crit")
	for _, c := range tk.Pairs {
		mark := ""
		if c.Significant {
			mark = "  *"
		}
		fmt.Printf("%4d-%-4d %12.6g %12.6g%s\n", c.Pair.I, c.Pair.J, c.MeanDiff, c.QCrit, mark)
	}
}

func readInput(r io.Reader) (groups [][]float64) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		group := make([]float64, 0, len(fields))
		for _, f := range fields {
			value, err := strconv.ParseFloat(f, 64)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			group = append(group, value)
		}
		groups = append(groups, group)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return
}
