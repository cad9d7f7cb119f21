package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"

	"inhouse/internal/domain/timesheet"
	"inhouse/internal/usecase/interfaces"
)

// Finding describes one inconsistency between records and their scope.
type Finding struct {
	Scope    string
	RecordID string
	Position int
	Problem  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s record=%s position=%d: %s", f.Scope, f.RecordID, f.Position, f.Problem)
}

const (
	ProblemDuplicatePosition = "duplicate position"
	ProblemInvalidPosition   = "position must be positive"
	ProblemUnclaimedPosition = "position is not claimed"
)

type ISanityUseCase interface {
	Check(ctx context.Context) ([]Finding, error)
}

// SanityUseCase verifies that booking positions are unique per day and step
// positions unique per project.
type SanityUseCase struct {
	bookingRepo  interfaces.IBookingRepository
	stepRepo     interfaces.IProjectStepRepository
	positionRepo interfaces.IPositionRepository
}

var _ ISanityUseCase = (*SanityUseCase)(nil)

func NewSanityUseCase(bookingRepo interfaces.IBookingRepository, stepRepo interfaces.IProjectStepRepository, positionRepo interfaces.IPositionRepository) *SanityUseCase {
	return &SanityUseCase{bookingRepo: bookingRepo, stepRepo: stepRepo, positionRepo: positionRepo}
}

type positioned struct {
	id       string
	position int
}

func (u *SanityUseCase) Check(ctx context.Context) ([]Finding, error) {
	scopes := map[string][]positioned{}

	bookings, err := u.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		s := timesheet.DayScope(b.DayID)
		scopes[s] = append(scopes[s], positioned{id: b.ID, position: b.Position})
	}
	steps, err := u.stepRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, st := range steps {
		s := timesheet.ProjectScope(st.ProjectID)
		scopes[s] = append(scopes[s], positioned{id: st.ID, position: st.Position})
	}

	names := make([]string, 0, len(scopes))
	for s := range scopes {
		names = append(names, s)
	}
	sort.Strings(names)

	var findings []Finding
	for _, scope := range names {
		claims, err := u.positionRepo.ListClaims(ctx, scope)
		if err != nil {
			return nil, err
		}
		findings = append(findings, checkScope(scope, scopes[scope], claims)...)
	}
	log.Printf("[sanity][usecase] checked scopes=%d findings=%d", len(names), len(findings))
	return findings, nil
}

func checkScope(scope string, records []positioned, claims []int) []Finding {
	claimed := make(map[int]bool, len(claims))
	for _, c := range claims {
		claimed[c] = true
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].position < records[j].position })

	var findings []Finding
	seen := map[int]string{}
	for _, r := range records {
		switch {
		case r.position <= 0:
			findings = append(findings, Finding{Scope: scope, RecordID: r.id, Position: r.position, Problem: ProblemInvalidPosition})
			continue
		case seen[r.position] != "":
			findings = append(findings, Finding{Scope: scope, RecordID: r.id, Position: r.position, Problem: ProblemDuplicatePosition})
		default:
			seen[r.position] = r.id
		}
		if !claimed[r.position] {
			findings = append(findings, Finding{Scope: scope, RecordID: r.id, Position: r.position, Problem: ProblemUnclaimedPosition})
		}
	}
	return findings
}
