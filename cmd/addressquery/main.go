package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"slices"

	"github.com/address-query/app/config"
	"github.com/address-query/app/models"
	"github.com/address-query/app/services"
	"github.com/address-query/internal/normalizer"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// componentFlags are the flag names of the address components.
var componentFlags = []string{"country-code", "state", "county", "city", "district", "postcode", "street", "housenumber"}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "addressquery",
		Usage: "Compile a structured address into a search query",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the query config (YAML); built-in defaults when empty",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging on stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "compile",
				Usage:  "Print the query DSL for one address",
				Action: compileCommand,
				Flags:  compileFlags(),
			},
		},
	}
}

func compileFlags() []cli.Flag {
	flags := make([]cli.Flag, 0, len(componentFlags)+4)
	for _, name := range componentFlags {
		flags = append(flags, &cli.StringFlag{Name: name, Usage: "Address component: " + name})
	}
	return append(flags,
		&cli.StringFlag{Name: "lang", Usage: "Requested language; config default when empty"},
		&cli.StringSliceFlag{Name: "languages", Usage: "Supported languages, overriding the config (e.g. en,de)"},
		&cli.BoolFlag{Name: "lenient", Usage: "Allow typos in postcode and street"},
		&cli.BoolFlag{Name: "pretty", Usage: "Indent the JSON output", Value: true},
	)
}

func compileCommand(c *cli.Context) error {
	logger := zap.NewNop()
	if c.Bool("debug") {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
	}
	defer logger.Sync()

	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}

	if langs := c.StringSlice("languages"); len(langs) > 0 {
		cfg.Languages = langs
		if !slices.Contains(langs, cfg.DefaultLanguage) {
			cfg.DefaultLanguage = langs[0]
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	qs := services.NewQueryService(cfg, normalizer.NewComponentNormalizer(logger), logger)

	opts := services.CompileOptions{Language: c.String("lang")}
	if c.IsSet("lenient") {
		lenient := c.Bool("lenient")
		opts.Lenient = &lenient
	}

	compiled, err := qs.Compile(componentsFromFlags(c), opts)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.App.Writer)
	if c.Bool("pretty") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(compiled.Source)
}

func componentsFromFlags(c *cli.Context) models.AddressComponents {
	get := func(name string) *string {
		if !c.IsSet(name) {
			return nil
		}
		v := c.String(name)
		return &v
	}

	return models.AddressComponents{
		CountryCode: get("country-code"),
		State:       get("state"),
		County:      get("county"),
		City:        get("city"),
		District:    get("district"),
		PostCode:    get("postcode"),
		Street:      get("street"),
		HouseNumber: get("housenumber"),
	}
}
