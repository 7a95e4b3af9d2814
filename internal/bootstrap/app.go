// Package bootstrap wires shared dependencies for the interactive shell.
package bootstrap

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/nlp"
	"resume-parser/internal/report"
	"resume-parser/internal/resumes"
	"resume-parser/internal/shared/config"
	"resume-parser/internal/shared/server"
)

// App holds shared dependencies. The tokenizer lifecycle is owned here, not
// by the components that consume it.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	Tokenizer     nlp.Tokenizer
	ResumeService *resumes.Service
	ReportBuilder *report.Builder
	ResumeHandler *resumes.Handler
}

// Build prepares shared dependencies and the router. A tokenizer that cannot
// be constructed is fatal: the caller is expected to abort with the message.
func Build(cfg config.Config) (*App, error) {
	tokenizer, err := nlp.NewProseTokenizer()
	if err != nil {
		return nil, fmt.Errorf("the english tokenizer model must be available at startup: %w", err)
	}

	svc := resumes.NewService(tokenizer)
	builder := &report.Builder{TemplatePath: cfg.ReportTemplate}
	handler := resumes.NewHandler(svc, builder, cfg.MaxUploadBytes)

	app := &App{
		Config:        cfg,
		Tokenizer:     tokenizer,
		ResumeService: svc,
		ReportBuilder: builder,
		ResumeHandler: handler,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		ResumeHandler: handler,
	})
	return app, nil
}
