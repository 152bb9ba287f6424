package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"woodshop_builds/internal/domain/entities"
	"woodshop_builds/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBuildNotFound      = errors.New("build not found")
	ErrInvalidBuildID     = errors.New("invalid build id")
	ErrInvalidCustomer    = errors.New("invalid customer contact")
	ErrInvalidProjectType = errors.New("invalid project type")
	ErrInvalidDimensions  = errors.New("invalid dimensions")
	ErrEmptyChangeRequest = errors.New("empty change request")
	ErrInvalidStatus      = errors.New("invalid build status")
	ErrInvalidLookup      = errors.New("invalid lookup parameters")
	ErrTooManyConflicts   = errors.New("too many concurrent updates, retry")
)

// maxUpsertRetries bounds the read-modify-write retry loop on revision
// conflicts. Two racing mutations never silently drop one another; the loser
// re-reads and reapplies, or surfaces ErrTooManyConflicts.
const maxUpsertRetries = 3

const accessCodeLength = 6

// noteExcerptLen is how much of a removed note's text is recorded in the new
// version's change request when the admin gives no reason.
const noteExcerptLen = 60

// CreateDraftInput carries the customer submission for a new build draft.
type CreateDraftInput struct {
	Customer entities.Customer
	Type     string
	Dims     entities.Dimensions
	Options  entities.BuildOptions
	Notes    string
}

// IBuildUseCase is the revision engine: every mutation of a build's
// specification or notes goes through here, appends exactly one new Version
// at index 0 and re-queues a fresh render set.

type IBuildUseCase interface {
	CreateDraft(ctx context.Context, in CreateDraftInput) (entities.Build, error)
	AddCustomerNote(ctx context.Context, id, changeRequest, noteText string) (entities.Build, error)
	RemoveCustomerNote(ctx context.Context, id, noteID, adminReason string) (entities.Build, error)
	MarkSubmitted(ctx context.Context, id string) (entities.Build, error)
	UpdateStatus(ctx context.Context, id string, status entities.BuildStatus) (entities.Build, error)
	GetByID(ctx context.Context, id string) (entities.Build, error)
	List(ctx context.Context) ([]entities.Build, error)
	FindByPhoneAndCode(ctx context.Context, phone, code string) (entities.Build, error)
	FindByNameAndPhone(ctx context.Context, name, phone string) (entities.Build, error)
}

type BuildUseCase struct {
	repo interfaces.IBuildRepository
}

var _ IBuildUseCase = (*BuildUseCase)(nil)

func NewBuildUseCase(repo interfaces.IBuildRepository) *BuildUseCase {
	return &BuildUseCase{repo: repo}
}

func (u *BuildUseCase) CreateDraft(ctx context.Context, in CreateDraftInput) (entities.Build, error) {
	in.Customer.Name = strings.TrimSpace(in.Customer.Name)
	in.Customer.Phone = strings.TrimSpace(in.Customer.Phone)
	in.Customer.Email = strings.TrimSpace(in.Customer.Email)
	if in.Customer.Name == "" || in.Customer.Phone == "" || in.Customer.Email == "" {
		return entities.Build{}, ErrInvalidCustomer
	}
	in.Type = strings.TrimSpace(in.Type)
	if in.Type == "" {
		return entities.Build{}, ErrInvalidProjectType
	}
	if in.Dims.LengthIn <= 0 || in.Dims.WidthIn <= 0 || in.Dims.HeightIn <= 0 {
		return entities.Build{}, ErrInvalidDimensions
	}

	now := time.Now().UTC()
	var ledger []entities.NoteItem
	if notes := strings.TrimSpace(in.Notes); notes != "" {
		ledger = []entities.NoteItem{{
			NoteID:    uuid.NewString(),
			CreatedAt: now,
			Author:    entities.NoteAuthorCustomer,
			Kind:      entities.NoteKindInitial,
			Text:      notes,
		}}
	}

	b := entities.Build{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Status:    entities.BuildStatusDraft,
		Customer:  in.Customer,
		Project: entities.Project{
			Type:     in.Type,
			Dims:     in.Dims,
			Options:  in.Options,
			Notes:    entities.CompileNotes(ledger, in.Notes),
			NotesLog: ledger,
		},
	}
	b.Versions = []entities.Version{newVersion(b, "", entities.StandardViews(), now)}

	return u.repo.Upsert(ctx, b)
}

func (u *BuildUseCase) AddCustomerNote(ctx context.Context, id, changeRequest, noteText string) (entities.Build, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Build{}, ErrInvalidBuildID
	}
	changeRequest = strings.TrimSpace(changeRequest)
	noteText = strings.TrimSpace(noteText)
	if changeRequest == "" && noteText == "" {
		return entities.Build{}, ErrEmptyChangeRequest
	}

	return u.mutate(ctx, id, func(b *entities.Build, now time.Time) error {
		ledger := entities.EnsureLedger(*b)
		if noteText != "" {
			ledger = append(ledger, entities.NoteItem{
				NoteID:    uuid.NewString(),
				CreatedAt: now,
				Author:    entities.NoteAuthorCustomer,
				Kind:      entities.NoteKindRefinement,
				Text:      noteText,
			})
		}
		b.Project.NotesLog = ledger
		b.Project.Notes = entities.CompileNotes(ledger, b.Project.Notes)
		b.Versions = append([]entities.Version{newVersion(*b, changeRequest, entities.DetailViews(), now)}, b.Versions...)
		return nil
	})
}

func (u *BuildUseCase) RemoveCustomerNote(ctx context.Context, id, noteID, adminReason string) (entities.Build, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Build{}, ErrInvalidBuildID
	}
	noteID = strings.TrimSpace(noteID)
	adminReason = strings.TrimSpace(adminReason)

	return u.mutate(ctx, id, func(b *entities.Build, now time.Time) error {
		ledger := entities.EnsureLedger(*b)
		removedText := ""
		kept := ledger[:0]
		for _, n := range ledger {
			if n.NoteID == noteID && removedText == "" {
				removedText = n.Text
				continue
			}
			kept = append(kept, n)
		}

		// A miss still produces a new Version: removal is also the admin's
		// force-refresh lever for the render queue.
		changeRequest := adminReason
		if changeRequest == "" {
			if removedText != "" {
				changeRequest = "Removed note: " + truncate(removedText, noteExcerptLen)
			} else {
				changeRequest = "Note removal"
			}
		}

		b.Project.NotesLog = kept
		b.Project.Notes = entities.CompileNotes(kept, "")
		b.Versions = append([]entities.Version{newVersion(*b, changeRequest, entities.DetailViews(), now)}, b.Versions...)
		return nil
	})
}

func (u *BuildUseCase) MarkSubmitted(ctx context.Context, id string) (entities.Build, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Build{}, ErrInvalidBuildID
	}

	return u.mutate(ctx, id, func(b *entities.Build, now time.Time) error {
		if b.Status == entities.BuildStatusDraft {
			b.Status = entities.BuildStatusSubmitted
		}
		// Never regenerate a valid code: it is the customer's lookup
		// credential and must stay stable across repeated submissions.
		if len(b.AccessCode) < accessCodeLength {
			code, err := newAccessCode()
			if err != nil {
				return err
			}
			b.AccessCode = code
		}
		return nil
	})
}

func (u *BuildUseCase) UpdateStatus(ctx context.Context, id string, status entities.BuildStatus) (entities.Build, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Build{}, ErrInvalidBuildID
	}
	if !entities.KnownBuildStatus(status) {
		return entities.Build{}, ErrInvalidStatus
	}

	return u.mutate(ctx, id, func(b *entities.Build, _ time.Time) error {
		b.Status = status
		return nil
	})
}

func (u *BuildUseCase) GetByID(ctx context.Context, id string) (entities.Build, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Build{}, ErrInvalidBuildID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Build{}, err
	}
	if b.ID == "" {
		return entities.Build{}, ErrBuildNotFound
	}
	return b, nil
}

func (u *BuildUseCase) List(ctx context.Context) ([]entities.Build, error) {
	return u.repo.GetAll(ctx)
}

func (u *BuildUseCase) FindByPhoneAndCode(ctx context.Context, phone, code string) (entities.Build, error) {
	phone = normalizePhone(phone)
	code = strings.TrimSpace(code)
	if phone == "" || code == "" {
		return entities.Build{}, ErrInvalidLookup
	}

	all, err := u.repo.GetAll(ctx)
	if err != nil {
		return entities.Build{}, err
	}
	for _, b := range all {
		if b.AccessCode != "" && b.AccessCode == code && normalizePhone(b.Customer.Phone) == phone {
			return b, nil
		}
	}
	return entities.Build{}, ErrBuildNotFound
}

// FindByNameAndPhone is the loose "forgot my code" recovery path: a
// case-insensitive substring match on the name plus a match on the last 7
// digits of the phone number. Not a security boundary.
func (u *BuildUseCase) FindByNameAndPhone(ctx context.Context, name, phone string) (entities.Build, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	suffix := phoneSuffix(phone)
	if name == "" || suffix == "" {
		return entities.Build{}, ErrInvalidLookup
	}

	all, err := u.repo.GetAll(ctx)
	if err != nil {
		return entities.Build{}, err
	}
	for _, b := range all {
		if strings.Contains(strings.ToLower(b.Customer.Name), name) && phoneSuffix(b.Customer.Phone) == suffix {
			return b, nil
		}
	}
	return entities.Build{}, ErrBuildNotFound
}

// mutate runs a read-modify-write cycle against the record store, retrying on
// revision conflicts so a racing version creation is reapplied instead of
// silently lost. UpdatedAt is refreshed on every pass.
func (u *BuildUseCase) mutate(ctx context.Context, id string, fn func(b *entities.Build, now time.Time) error) (entities.Build, error) {
	for attempt := 0; attempt < maxUpsertRetries; attempt++ {
		stored, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Build{}, err
		}
		if stored.ID == "" {
			return entities.Build{}, ErrBuildNotFound
		}

		b := stored.Clone()
		now := time.Now().UTC()
		if err := fn(&b, now); err != nil {
			return entities.Build{}, err
		}
		b.UpdatedAt = now

		updated, err := u.repo.Upsert(ctx, b)
		if errors.Is(err, interfaces.ErrRevisionConflict) {
			continue
		}
		if err != nil {
			return entities.Build{}, err
		}
		return updated, nil
	}
	return entities.Build{}, ErrTooManyConflicts
}

// newVersion snapshots the build's live project into an immutable Version
// with a fresh queued render set. Callers prepend the result to b.Versions.
func newVersion(b entities.Build, changeRequest string, views []entities.RenderView, now time.Time) entities.Version {
	renders := make([]entities.RenderJob, 0, len(views))
	for _, v := range views {
		renders = append(renders, entities.RenderJob{
			RenderID: uuid.NewString(),
			View:     v,
			Status:   entities.RenderStatusQueued,
		})
	}
	snap := entities.InputsSnapshot{
		Type:    b.Project.Type,
		Dims:    b.Project.Dims,
		Options: b.Project.Options,
		Notes:   entities.CompileNotes(b.Project.NotesLog, b.Project.Notes),
	}
	if len(b.Project.NotesLog) > 0 {
		snap.NotesLog = make([]entities.NoteItem, len(b.Project.NotesLog))
		copy(snap.NotesLog, b.Project.NotesLog)
	}
	return entities.Version{
		VersionID:             uuid.NewString(),
		CreatedAt:             now,
		CustomerChangeRequest: changeRequest,
		InputsSnapshot:        snap,
		Renders:               renders,
	}
}

func newAccessCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generate access code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func normalizePhone(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func phoneSuffix(s string) string {
	d := normalizePhone(s)
	if len(d) > 7 {
		return d[len(d)-7:]
	}
	return d
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
