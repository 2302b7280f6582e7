package docgen

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nyayasetu/nyayasetu/internal/core"
	"github.com/nyayasetu/nyayasetu/internal/render"
)

const defaultDepartment = "Revenue Department"

type rtiBuilder struct {
	provider core.CompletionProvider
}

func (b *rtiBuilder) docType() core.DocumentType { return core.TypeRTI }

func (b *rtiBuilder) build(ctx context.Context, req core.DocumentRequest) (any, error) {
	var content core.RTIContent

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := complete(gctx, b.provider, "rti information sought", rtiInformationPrompt(req.Issue, req.Insights))
		if err != nil {
			return err
		}
		content.InformationSought = numberedBlock(raw)
		return nil
	})
	g.Go(func() error {
		raw, err := complete(gctx, b.provider, "rti legal basis", rtiLegalPrompt(req.Issue, req.Insights))
		if err != nil {
			return err
		}
		content.LegalBasis = numberedBlock(raw)
		return nil
	})
	g.Go(func() error {
		raw, err := complete(gctx, b.provider, "rti department", rtiDepartmentPrompt(req.Issue, req.Insights))
		if err != nil {
			return err
		}
		fields := parseKeyValues(raw, "Department", "Additional Info")
		content.DepartmentName = valueOr(fields, "Department", defaultDepartment)
		if info := fields["Additional Info"]; info != "" {
			content.AdditionalInfo = numberedLines(info)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Environmental requests go to the pollution control board regardless of
	// what the model proposed.
	if isEnvironmental(req.Issue) {
		content.DepartmentName = pollutionBoard(req.Insights)
	}

	city, state := splitLocation(req.Location)
	contact := req.ContactNumber
	if contact == "" {
		contact = "[Contact Number Not Provided]"
	}

	return render.RTIData{
		ApplicantName:     req.UserName,
		ApplicantAddress:  city,
		DepartmentName:    content.DepartmentName,
		OfficeAddress:     city,
		Location:          state,
		InformationSought: content.InformationSought,
		LegalBasis:        content.LegalBasis,
		AdditionalInfo:    content.AdditionalInfo,
		Date:              time.Now().Format(dateLayout),
		ContactNumber:     contact,
	}, nil
}
