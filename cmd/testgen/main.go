// Package main is the testgen entry point: it wires the adapters to the
// core services and hands them to the CLI.
package main

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driven/ai"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driven/config/env"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driven/config/file"
	docxexport "github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driven/export/docx"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driven/export/wordcloud"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driven/nlp"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driven/storage/memory"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/adapters/driving/cli"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/services"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/extraction"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/generation"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/logger"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/normalisers"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/normalisers/docx"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/normalisers/pdf"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/normalisers/plaintext"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/postprocessors"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBuilder(build)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// build wires every adapter. Missing capabilities (language model, text
// generation service) degrade to warnings, never to errors.
func build(opts cli.Options) (*cli.Services, error) {
	logger.Section("Setup")

	configStore, err := newConfigStore(opts)
	if err != nil {
		return nil, err
	}

	settingsService := services.NewSettingsService(configStore, ai.NewConfigValidator())
	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}

	var warnings []string

	lm, err := nlp.Create(settings.NLP)
	if err != nil {
		warnings = append(warnings, err.Error())
	}
	if lm == nil {
		logger.Debug("linguistic model disabled, analysis and verb detection unavailable")
	}

	pipeline, err := newPipeline(lm, settingsService.GetPipelineConfig())
	if err != nil {
		return nil, err
	}

	llm, err := ai.CreateAndValidateLLMService(context.Background(), &settings.LLM)
	if err != nil {
		warnings = append(warnings, err.Error())
	}
	if llm != nil {
		logger.Debug("text generation service: %s", llm.ModelName())
	}

	ruleExtractor, err := extraction.NewRuleExtractor(extraction.RuleConfig{})
	if err != nil {
		return nil, err
	}
	pdcExtractor, err := extraction.NewControlPointExtractor()
	if err != nil {
		return nil, err
	}
	pdcGenerator := generation.NewControlPointGenerator(driven.GenerateOptions{})
	caseGenerator := generation.NewTestCaseGenerator(newRand(settings.Generation.Seed), driven.GenerateOptions{})

	if prompts := newPromptStore(opts); prompts != nil {
		ruleExtractor.SetPromptStore(prompts)
		pdcGenerator.SetPromptStore(prompts)
		caseGenerator.SetPromptStore(prompts)
	}

	workbench := services.NewWorkbenchService(services.WorkbenchConfig{
		Sessions:      memory.NewSessionStore(),
		Normalisers:   normalisers.NewRegistry(pdf.New(), docx.New(), plaintext.New()),
		Analysis:      services.NewAnalysisService(pipeline),
		Rules:         services.NewRuleService(ruleExtractor, lm, llm),
		ControlPoints: services.NewControlPointService(pdcExtractor, pdcGenerator, lm, llm),
		TestCases:     services.NewTestCaseService(caseGenerator, llm),
		Exporter:      docxexport.New(),
		WordCloud:     wordcloud.New(wordcloud.Options{}),
		Threshold:     settings.Matching.Threshold,
	})

	return &cli.Services{
		Workbench: workbench,
		Settings:  settingsService,
		Warnings:  warnings,
		Close: func() error {
			if llm != nil {
				return llm.Close()
			}
			return nil
		},
	}, nil
}

// newConfigStore layers the environment (and ./.env) over the TOML file,
// or over defaults with --no-config.
func newConfigStore(opts cli.Options) (driven.ConfigStore, error) {
	var inner driven.ConfigStore
	if opts.NoConfig {
		inner = memory.NewConfigStore()
	} else {
		store, err := file.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return nil, err
		}
		inner = store
	}
	return env.New(inner, ".env")
}

// newPromptStore returns nil with --no-config; the built-in prompts apply.
func newPromptStore(opts cli.Options) driven.PromptStore {
	if opts.NoConfig {
		return nil
	}
	dir := ""
	if opts.ConfigDir != "" {
		dir = filepath.Join(opts.ConfigDir, "prompts")
	}
	store, err := file.NewPromptStore(dir)
	if err != nil {
		logger.Warn("prompt store: %v", err)
		return nil
	}
	return store
}

// newPipeline returns nil when no linguistic model is loaded, which the
// analysis service reports as unavailable.
func newPipeline(lm driven.LanguageModel, cfg domain.PipelineConfig) (driven.PostProcessorPipeline, error) {
	if lm == nil {
		return nil, nil
	}
	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry, lm)
	pipeline, err := registry.BuildPipeline(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("cleaning pipeline: %s", strings.Join(pipeline.Names(), ", "))
	return pipeline, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
