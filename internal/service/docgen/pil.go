package docgen

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nyayasetu/nyayasetu/internal/core"
	"github.com/nyayasetu/nyayasetu/internal/render"
)

type pilBuilder struct {
	provider core.CompletionProvider
}

func (b *pilBuilder) docType() core.DocumentType { return core.TypePIL }

// build drafts the petition sections in parallel and assembles the template
// data. Any section failure cancels the remaining calls and aborts the
// request.
func (b *pilBuilder) build(ctx context.Context, req core.DocumentRequest) (any, error) {
	var content core.PILContent

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := complete(gctx, b.provider, "pil facts", pilFactsPrompt(req.Issue, req.Insights))
		if err != nil {
			return err
		}
		content.IssueSummary = numberedBlock(raw)
		return nil
	})
	g.Go(func() error {
		raw, err := complete(gctx, b.provider, "pil legal basis", pilLegalPrompt(req.Issue, req.Insights))
		if err != nil {
			return err
		}
		content.LegalInsights = numberedBlock(raw)
		return nil
	})
	g.Go(func() error {
		raw, err := complete(gctx, b.provider, "pil prayers", pilPrayersPrompt(req.Issue, req.Insights))
		if err != nil {
			return err
		}
		content.Prayers = numberedLines(raw)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := time.Now()
	city, state := splitLocation(req.Location)
	if state == "" {
		state = req.Location
	}
	respondents := []string{
		fmt.Sprintf("State of %s", state),
		fmt.Sprintf("%s Pollution Control Committee", state),
		"Ministry of Environment, Forest and Climate Change",
		"Central Pollution Control Board",
		fmt.Sprintf("Municipal Corporation of %s", city),
		fmt.Sprintf("%s Development Authority", city),
	}

	return render.PILData{
		UserName:         req.UserName,
		UserAddress:      city,
		Location:         state,
		IssueSummary:     content.IssueSummary,
		LegalInsights:    content.LegalInsights,
		Date:             now.Format(dateLayout),
		Year:             now.Year(),
		Month:            now.Format("January"),
		Respondents:      respondents,
		PetitionPurpose:  "environmental protection and public health",
		IssueDescription: "environmental pollution and public health hazards",
		Prayers:          content.Prayers,
		ContactDetails:   contactDetails(req.ContactNumber, city),
	}, nil
}
