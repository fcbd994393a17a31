package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/smartviews/pos/cmd"
)

// completion installs bash/zsh completion for svpos. It returns immediately
// unless the shell is asking for completions.
func completion() {
	sale := &complete.Command{
		Flags: map[string]complete.Predictor{
			"i":    predict.Something,
			"c":    predict.Something,
			"pay":  predict.Set{"cash", "pos", "transfer"},
			"html": predict.Files("*.html"),
		},
	}
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"store":    predict.Dirs("*"),
			"currency": predict.Something,
		},
		Sub: map[string]*complete.Command{
			"products":     {Flags: map[string]complete.Predictor{"q": predict.Something}},
			"add-product":  {Flags: map[string]complete.Predictor{"name": predict.Something, "sku": predict.Something, "price": predict.Something, "stock": predict.Something, "category": predict.Something}},
			"restock":      {Flags: map[string]complete.Predictor{"sku": predict.Something, "n": predict.Something}},
			"set-price":    {Flags: map[string]complete.Predictor{"sku": predict.Something, "price": predict.Something}},
			"customers":    {},
			"add-customer": {Flags: map[string]complete.Predictor{"name": predict.Something}},
			"sell":         sale,
			"sales":        {Flags: map[string]complete.Predictor{"head": predict.Something, "tail": predict.Something}},
			"receipt":      {Flags: map[string]complete.Predictor{"html": predict.Files("*.html")}},
			"revenue":      {Flags: map[string]complete.Predictor{"days": predict.Something}},
			"export":       {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"query":        {Args: predict.Set{"products", "customers", "sales"}},
			"topic":        {Args: predict.Set{"readme", "checkout", "storage", "reporting"}},
		},
	}
	c.Complete("svpos")
}

func main() {
	completion()

	// A .env file in the working directory may carry SVPOS_* variables.
	// Its absence is the normal case.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
