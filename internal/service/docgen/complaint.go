package docgen

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nyayasetu/nyayasetu/internal/core"
	"github.com/nyayasetu/nyayasetu/internal/render"
)

const (
	defaultAuthorityDesignation = "The Presiding Officer"
	defaultAuthorityName        = "Consumer Disputes Redressal Commission"
	defaultSubject              = "Complaint regarding defective product and deficient service"
)

type complaintBuilder struct {
	provider core.CompletionProvider
}

func (b *complaintBuilder) docType() core.DocumentType { return core.TypeComplaint }

func (b *complaintBuilder) build(ctx context.Context, req core.DocumentRequest) (any, error) {
	var content core.ComplaintContent

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := complete(gctx, b.provider, "complaint facts", complaintFactsPrompt(req.Issue, req.Insights))
		if err != nil {
			return err
		}
		content.IssueSummary = numberedBlock(raw)
		return nil
	})
	g.Go(func() error {
		raw, err := complete(gctx, b.provider, "complaint legal basis", complaintLegalPrompt(req.Issue, req.Insights))
		if err != nil {
			return err
		}
		content.LegalInsights = numberedBlock(raw)
		return nil
	})
	g.Go(func() error {
		raw, err := complete(gctx, b.provider, "complaint authority", complaintAuthorityPrompt(req.Issue, req.Insights))
		if err != nil {
			return err
		}
		fields := parseKeyValues(raw, "Designation", "Name", "Subject")
		content.AuthorityDesignation = valueOr(fields, "Designation", defaultAuthorityDesignation)
		content.AuthorityName = valueOr(fields, "Name", defaultAuthorityName)
		content.Subject = valueOr(fields, "Subject", defaultSubject)
		return nil
	})
	g.Go(func() error {
		raw, err := complete(gctx, b.provider, "complaint prayers", complaintPrayersPrompt(req.Issue, req.Insights))
		if err != nil {
			return err
		}
		content.Prayers = numberedLines(raw)
		return nil
	})
	g.Go(func() error {
		raw, err := complete(gctx, b.provider, "complaint documents", complaintDocumentsPrompt(req.Issue, req.Insights))
		if err != nil {
			return err
		}
		content.Documents = numberedLines(raw)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return render.ComplaintData{
		UserName:             req.UserName,
		AuthorityDesignation: content.AuthorityDesignation,
		AuthorityName:        content.AuthorityName,
		AuthorityAddress:     req.Location,
		Location:             req.Location,
		RespondentName:       inferRespondent(req.Issue),
		Subject:              content.Subject,
		IssueSummary:         content.IssueSummary,
		LegalInsights:        content.LegalInsights,
		Prayers:              content.Prayers,
		Documents:            content.Documents,
		Date:                 time.Now().Format(dateLayout),
		ContactDetails:       contactDetails(req.ContactNumber, req.Location),
	}, nil
}
