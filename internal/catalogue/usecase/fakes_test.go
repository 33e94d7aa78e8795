package usecase

import (
	"context"
	"time"

	"legaldata-srv/internal/catalogue"
	"legaldata-srv/internal/catalogue/repository"
	"legaldata-srv/internal/model"
	"legaldata-srv/pkg/coverage"
	"legaldata-srv/pkg/discord"
	"legaldata-srv/pkg/log"
)

type fakeCoverage struct {
	responses map[string][]coverage.CoverageResult
	errs      map[string]error
	calls     []string
}

func (f *fakeCoverage) GetCoverage(ctx context.Context, docType string) (*coverage.CoverageResponse, error) {
	f.calls = append(f.calls, docType)
	if err := f.errs[docType]; err != nil {
		return nil, err
	}
	return &coverage.CoverageResponse{Results: f.responses[docType]}, nil
}

type fakeReadme struct {
	err   error
	saved []repository.SaveReadmeOptions
	out   repository.SaveReadmeOutput
}

func (f *fakeReadme) SaveReadme(ctx context.Context, opts repository.SaveReadmeOptions) (repository.SaveReadmeOutput, error) {
	if f.err != nil {
		return repository.SaveReadmeOutput{}, f.err
	}
	f.saved = append(f.saved, opts)
	return f.out, nil
}

type fakeSnapshots struct {
	latest  *model.Snapshot
	getErr  error
	saveErr error
	saved   []repository.SaveSnapshotOptions
}

func (f *fakeSnapshots) GetLatestSnapshot(ctx context.Context) (*model.Snapshot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.latest == nil {
		return nil, repository.ErrSnapshotNotFound
	}
	return f.latest, nil
}

func (f *fakeSnapshots) SaveSnapshot(ctx context.Context, opts repository.SaveSnapshotOptions) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, opts)
	return nil
}

type sentMessage struct {
	kind   discord.MessageType
	title  string
	fields []discord.EmbedField
	err    error
}

type fakeDiscord struct {
	sent    []sentMessage
	sendErr error
}

func (f *fakeDiscord) SendEmbed(ctx context.Context, options discord.MessageOptions) error {
	f.sent = append(f.sent, sentMessage{kind: options.Type, title: options.Title, fields: options.Fields})
	return f.sendErr
}

func (f *fakeDiscord) SendSuccess(ctx context.Context, title, description string, fields []discord.EmbedField) error {
	return f.SendEmbed(ctx, discord.MessageOptions{Type: discord.MessageTypeSuccess, Title: title, Fields: fields})
}

func (f *fakeDiscord) SendWarning(ctx context.Context, title, description string, fields []discord.EmbedField) error {
	return f.SendEmbed(ctx, discord.MessageOptions{Type: discord.MessageTypeWarning, Title: title, Fields: fields})
}

func (f *fakeDiscord) SendError(ctx context.Context, title, description string, err error) error {
	f.sent = append(f.sent, sentMessage{kind: discord.MessageTypeError, title: title, err: err})
	return f.sendErr
}

func (f *fakeDiscord) GetWebhookURL() string { return "https://discord.test/webhook" }

type testDeps struct {
	coverage  *fakeCoverage
	readme    *fakeReadme
	mirrors   []*fakeReadme
	snapshots *fakeSnapshots
	discord   *fakeDiscord
}

var fixedNow = time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)

func newTestUseCase(d testDeps) catalogue.UseCase {
	mirrors := make([]repository.ReadmeRepository, 0, len(d.mirrors))
	for _, m := range d.mirrors {
		mirrors = append(mirrors, m)
	}

	var snapshots repository.SnapshotRepository
	if d.snapshots != nil {
		snapshots = d.snapshots
	}
	var notifier discord.IDiscord
	if d.discord != nil {
		notifier = d.discord
	}

	uc := New(d.coverage, d.readme, mirrors, snapshots, notifier, log.NewNop(), Config{SnapshotTTL: time.Hour}).(*implUseCase)
	uc.now = func() time.Time { return fixedNow }
	uc.newRunID = func() string { return "run-test" }
	return uc
}

// fixtureCoverage mirrors testdata/golden_readme.md.
func fixtureCoverage() *fakeCoverage {
	return &fakeCoverage{
		responses: map[string][]coverage.CoverageResult{
			catalogue.DocTypeCases: {
				{Dataset: "FCA", DescriptionEN: "Federal Court of Appeal", DescriptionFR: "Cour d'appel fédérale", EarliestDocumentDate: "2001-01-05T00:00:00Z", LatestDocumentDate: "2025-05-30T00:00:00Z", NumberOfDocuments: 12345},
				{Dataset: "ZZZ", DescriptionEN: "Unlisted", EarliestDocumentDate: "2000-01-01T00:00:00Z", LatestDocumentDate: "2000-01-01T00:00:00Z", NumberOfDocuments: 999},
				{Dataset: "SCC", DescriptionEN: "Supreme Court of Canada", DescriptionFR: "Cour suprême du Canada", EarliestDocumentDate: "1877-01-15T00:00:00Z", LatestDocumentDate: "2025-06-01T12:00:00.123456Z", NumberOfDocuments: 10512},
				{Dataset: "RAD", DescriptionEN: "Refugee Appeal Division", EarliestDocumentDate: "not a date", LatestDocumentDate: "", NumberOfDocuments: 1234567},
			},
			catalogue.DocTypeLaws: {
				{Dataset: "REGULATIONS-FED", DescriptionEN: "Federal Regulations", EarliestDocumentDate: "1950-03-01T00:00:00", LatestDocumentDate: "2025-04-01T00:00:00+00:00", NumberOfDocuments: 4800},
				{Dataset: "LEGISLATION-FED", DescriptionEN: "Federal Acts", EarliestDocumentDate: "1867-07-01T00:00:00Z", LatestDocumentDate: "2025-03-15T00:00:00Z", NumberOfDocuments: 956},
			},
		},
	}
}
