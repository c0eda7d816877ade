package cmd

import (
	"io"
	"os"

	"github.com/go-imsto/dimstat/batch"
	"github.com/go-imsto/dimstat/config"
)

var cmdStat = &Command{
	UsageLine: "stat [-in DIR] [-chart FILE] [-hist]",
	Short:     "report image dimensions without resizing",
	Long: `
stat measures the images of a folder like analyze does and prints the same
statistics, but writes no resized image.
`,
}

var (
	stdout io.Writer = os.Stdout

	sInput string
	sChart string
	sHist  bool
)

func init() {
	cmdStat.Run = runStat
	cmdStat.Flag.StringVar(&sInput, "in", config.Current.InputDir, "input folder")
	cmdStat.Flag.StringVar(&sChart, "chart", config.Current.Chart, "histogram png file")
	cmdStat.Flag.BoolVar(&sHist, "hist", false, "print histogram bins")
}

func runStat(args []string) bool {
	opt := batch.Options{
		InputDir: sInput,
		DryRun:   true,
		Out:      stdout,
	}
	_, err := batch.Run(opt, sinks(sChart, sHist))
	return finish(err)
}
