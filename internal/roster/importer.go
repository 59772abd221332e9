// Package roster imports tabular member data into the roster store.
package roster

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/BotDogs4645/theLAW/internal/entities"
)

// Same syntactic check the roster source applies on export.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const teamsDelimiter = ":"

// MemberStore is the subset of the repository the importer writes through.
type MemberStore interface {
	UpsertMember(ctx context.Context, record entities.MemberRecord) (bool, error)
}

// Importer parses a roster CSV and upserts records by email.
type Importer struct {
	log   *zap.SugaredLogger
	store MemberStore
}

// NewImporter constructs an Importer writing through the given store.
func NewImporter(log *zap.SugaredLogger, store MemberStore) *Importer {
	return &Importer{
		log:   log.Named("roster.importer"),
		store: store,
	}
}

// ImportBatch reads CSV rows and upserts each valid one. Rows with a blank or
// malformed email are rejected and collected; the batch keeps going. A store
// failure is structural and aborts the batch with an error. Row numbers in
// the report are 1-based counting the header, so the first data row is 2.
func (i *Importer) ImportBatch(ctx context.Context, r io.Reader) (entities.ImportReport, error) {
	report := entities.ImportReport{Rejected: make([]entities.RowRejection, 0)}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return report, fmt.Errorf("%w: missing csv header", entities.ErrInvalidArgument)
	}

	cols, err := headerIndex(header)
	if err != nil {
		return report, err
	}

	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			report.Rejected = append(report.Rejected, entities.RowRejection{
				Row:    rowNum,
				Reason: fmt.Sprintf("malformed row: %v", err),
			})
			continue
		}

		record, reason := cols.parse(row)
		if reason != "" {
			report.Rejected = append(report.Rejected, entities.RowRejection{Row: rowNum, Reason: reason})
			continue
		}

		inserted, err := i.store.UpsertMember(ctx, record)
		if err != nil {
			return report, fmt.Errorf("row %d: %w", rowNum, err)
		}
		if inserted {
			report.Inserted++
		} else {
			report.Updated++
		}
	}

	i.log.Infow("import finished",
		"inserted", report.Inserted,
		"updated", report.Updated,
		"rejected", len(report.Rejected),
	)
	return report, nil
}

type columnIndex struct {
	firstName int
	lastName  int
	email     int
	teams     int
}

func headerIndex(header []string) (columnIndex, error) {
	idx := columnIndex{firstName: -1, lastName: -1, email: -1, teams: -1}
	for pos, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "first_name":
			idx.firstName = pos
		case "last_name":
			idx.lastName = pos
		case "email":
			idx.email = pos
		case "teams":
			idx.teams = pos
		}
	}

	var missing []string
	for _, req := range []struct {
		name string
		pos  int
	}{
		{"first_name", idx.firstName},
		{"last_name", idx.lastName},
		{"email", idx.email},
	} {
		if req.pos < 0 {
			missing = append(missing, req.name)
		}
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("%w: missing columns %s", entities.ErrInvalidArgument, strings.Join(missing, ", "))
	}
	return idx, nil
}

func (c columnIndex) parse(row []string) (entities.MemberRecord, string) {
	email := strings.ToLower(strings.TrimSpace(field(row, c.email)))
	if email == "" {
		return entities.MemberRecord{}, "email is blank"
	}
	if !emailPattern.MatchString(email) {
		return entities.MemberRecord{}, fmt.Sprintf("invalid email %q", email)
	}

	return entities.MemberRecord{
		Email:     email,
		FirstName: strings.TrimSpace(field(row, c.firstName)),
		LastName:  strings.TrimSpace(field(row, c.lastName)),
		Teams:     ParseTeams(field(row, c.teams)),
	}, ""
}

func field(row []string, pos int) string {
	if pos < 0 || pos >= len(row) {
		return ""
	}
	return row[pos]
}

// ParseTeams splits a delimiter-separated teams field into a duplicate-free
// list. Blank input means no teams; a single code without the delimiter is
// valid as-is.
func ParseTeams(raw string) []string {
	teams := make([]string, 0)
	seen := make(map[string]struct{})
	for _, code := range strings.Split(raw, teamsDelimiter) {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		teams = append(teams, code)
	}
	return teams
}
