package main

import (
	"flag"
	"fmt"

	"github.com/iwvelando/rehab-plan/internal/config"
	"github.com/iwvelando/rehab-plan/internal/logging"
	"github.com/iwvelando/rehab-plan/internal/plan"
	"github.com/iwvelando/rehab-plan/pkg/constants"
	"github.com/iwvelando/rehab-plan/pkg/output"
	"github.com/iwvelando/rehab-plan/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to case file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load case file at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over the case file
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if err := conf.ValidateConfiguration(); err != nil {
		logger.Fatal("invalid case file",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	results, err := plan.GetPlans(logger, *conf)
	if err != nil {
		logger.Fatal("failed to compute plans",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	for _, p := range results {
		for _, warning := range p.Warnings {
			logger.Warn("case warning: "+warning,
				zap.String("op", "main"),
				zap.String("case", p.Name),
			)
		}
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(results)
	case constants.OutputFormatCSV:
		if err := output.CsvFormat(results); err != nil {
			logger.Fatal("failed to write CSV output",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
