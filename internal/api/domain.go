package api

import (
	"github.com/JaimeStill/litterlens/internal/prompts"
	"github.com/JaimeStill/litterlens/internal/records"
	"github.com/JaimeStill/litterlens/internal/reports"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Prompts prompts.System
	Records records.System
	Reports reports.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	promptsSystem := prompts.New(&runtime.Prompts, runtime.Logger)

	recordsSystem := records.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Top,
	)

	reportsSystem := reports.New(
		runtime.Inference,
		promptsSystem,
		recordsSystem,
		runtime.Storage,
		runtime.Metrics,
		runtime.Logger,
	)

	return &Domain{
		Prompts: promptsSystem,
		Records: recordsSystem,
		Reports: reportsSystem,
	}
}
