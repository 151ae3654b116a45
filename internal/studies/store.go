package studies

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/ezredbiom/studysearch/internal/filter"
	"github.com/ezredbiom/studysearch/internal/postgres"
)

// searchTemplate is the fixed query the search path executes. The %s verb is
// the single substitution point for the WHERE predicate; the clause inserted
// there has already passed the allow-list validator and has had its
// placeholders rebound to the driver form, so it can never carry literal
// values.
const searchTemplate = `SELECT DISTINCT s.study_id, s.study_title, s.study_abstract,
       sp_pi.name AS pi_name, sp_pi.email AS pi_email,
       sp_pi.affiliation AS pi_affiliation,
       sp_lab.name AS lab_person_name
FROM qiita.study s
LEFT JOIN qiita.study_person sp_pi
    ON s.principal_investigator_id = sp_pi.study_person_id
LEFT JOIN qiita.study_person sp_lab
    ON s.lab_person_id = sp_lab.study_person_id
LEFT JOIN qiita.study_artifact sa ON s.study_id = sa.study_id
LEFT JOIN qiita.artifact a ON sa.artifact_id = a.artifact_id
LEFT JOIN qiita.visibility v ON a.visibility_id = v.visibility_id
WHERE %s
ORDER BY s.study_id`

// Store executes read-only queries against the study registry.
type Store struct {
	pg *postgres.Postgres
}

// NewStore returns a Store backed by the given Postgres client.
func NewStore(pg *postgres.Postgres) *Store {
	return &Store{pg: pg}
}

// rebind converts the synthesizer placeholder form to the driver's positional
// placeholder. Safe because the clause has been validated: the only %
// sequences it can contain are placeholders.
func rebind(clause string) string {
	return strings.ReplaceAll(clause, filter.Placeholder, "?")
}

// Search executes the fixed search template with the given filter and returns
// matching studies ordered by ascending identifier. An empty clause executes
// as an unconditional scan; no rows is an empty slice, not an error.
//
// The filter is re-validated here even though the synthesizers validate
// upstream — the accessor is the last line of defense in front of the
// database. The whole call runs inside one read-only transaction that is
// released on every exit path.
func (s *Store) Search(ctx context.Context, f filter.Filter) ([]StudyRecord, error) {
	if err := filter.Validate(f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	clause := f.Clause
	if clause == "" {
		clause = "1=1"
	}
	query := fmt.Sprintf(searchTemplate, rebind(clause))

	records := make([]StudyRecord, 0)
	err := s.pg.ReadOnlyTransaction(ctx, func(tx *gorm.DB) error {
		return tx.Raw(query, f.Params...).Scan(&records).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: executing search: %v", ErrStore, postgres.TranslateError(err))
	}

	return records, nil
}

// studyRow is the raw projection of one qiita.study row.
type studyRow struct {
	StudyID                 int     `gorm:"column:study_id"`
	Title                   string  `gorm:"column:study_title"`
	Abstract                *string `gorm:"column:study_abstract"`
	Description             *string `gorm:"column:study_description"`
	Alias                   *string `gorm:"column:study_alias"`
	PrincipalInvestigatorID *int    `gorm:"column:principal_investigator_id"`
	LabPersonID             *int    `gorm:"column:lab_person_id"`
}

// Get returns the full detail projection for one study, with declared
// defaults applied to absent optional fields. Returns ErrStudyNotFound when
// the identifier is unknown.
func (s *Store) Get(ctx context.Context, studyID int) (*StudyDetail, error) {
	var detail *StudyDetail

	err := s.pg.ReadOnlyTransaction(ctx, func(tx *gorm.DB) error {
		row, err := loadStudyRow(tx, studyID)
		if err != nil {
			return err
		}

		d := &StudyDetail{
			StudyID:        row.StudyID,
			Title:          row.Title,
			Abstract:       orDefault(row.Abstract, DefaultAbstract),
			Description:    orDefault(row.Description, DefaultDescription),
			Alias:          orDefault(row.Alias, ""),
			PublicationDOI: []string{},
			PublicationPID: []string{},
		}

		if row.PrincipalInvestigatorID != nil {
			if d.PI, err = loadContact(tx, *row.PrincipalInvestigatorID); err != nil {
				return err
			}
		}
		if row.LabPersonID != nil {
			if d.LabPerson, err = loadContact(tx, *row.LabPersonID); err != nil {
				return err
			}
		}

		if d.PublicationDOI, d.PublicationPID, err = loadPublications(tx, studyID); err != nil {
			return err
		}

		if d.Status, err = loadStatus(tx, studyID); err != nil {
			return err
		}

		detail = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	return detail, nil
}

// ListSummaries enumerates all known studies with best-effort title and
// status. Entries whose status cannot be resolved are skipped rather than
// failing the listing.
func (s *Store) ListSummaries(ctx context.Context) ([]StudySummary, error) {
	summaries := make([]StudySummary, 0)

	err := s.pg.ReadOnlyTransaction(ctx, func(tx *gorm.DB) error {
		var rows []struct {
			StudyID int    `gorm:"column:study_id"`
			Title   string `gorm:"column:study_title"`
		}
		if err := tx.Raw(
			`SELECT study_id, study_title FROM qiita.study ORDER BY study_id`,
		).Scan(&rows).Error; err != nil {
			return err
		}

		for _, row := range rows {
			status, err := loadStatus(tx, row.StudyID)
			if err != nil {
				continue
			}
			summaries = append(summaries, StudySummary{
				StudyID: row.StudyID,
				Title:   row.Title,
				Status:  status,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: listing studies: %v", ErrStore, postgres.TranslateError(err))
	}

	return summaries, nil
}

func loadStudyRow(tx *gorm.DB, studyID int) (*studyRow, error) {
	var rows []studyRow
	err := tx.Raw(
		`SELECT study_id, study_title, study_abstract, study_description,
                study_alias, principal_investigator_id, lab_person_id
         FROM qiita.study WHERE study_id = ?`, studyID,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: loading study %d: %v", ErrStore, studyID, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: study %d", ErrStudyNotFound, studyID)
	}
	return &rows[0], nil
}

func loadContact(tx *gorm.DB, personID int) (*Contact, error) {
	var rows []struct {
		Name        string  `gorm:"column:name"`
		Email       string  `gorm:"column:email"`
		Affiliation *string `gorm:"column:affiliation"`
	}
	err := tx.Raw(
		`SELECT name, email, affiliation FROM qiita.study_person WHERE study_person_id = ?`,
		personID,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: loading contact %d: %v", ErrStore, personID, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &Contact{
		Name:        rows[0].Name,
		Email:       rows[0].Email,
		Affiliation: orDefault(rows[0].Affiliation, ""),
	}, nil
}

func loadPublications(tx *gorm.DB, studyID int) (dois, pids []string, err error) {
	var rows []struct {
		Publication string `gorm:"column:publication"`
		IsDOI       bool   `gorm:"column:is_doi"`
	}
	err = tx.Raw(
		`SELECT publication, is_doi FROM qiita.study_publication WHERE study_id = ?`,
		studyID,
	).Scan(&rows).Error
	if err != nil {
		return nil, nil, fmt.Errorf("%w: loading publications for study %d: %v", ErrStore, studyID, err)
	}

	dois, pids = []string{}, []string{}
	for _, row := range rows {
		if row.IsDOI {
			dois = append(dois, row.Publication)
		} else {
			pids = append(pids, row.Publication)
		}
	}
	return dois, pids, nil
}

// loadStatus derives a study's status from the visibility of its artifacts:
// the most visible state wins, and a study with no artifacts is "sandbox".
func loadStatus(tx *gorm.DB, studyID int) (string, error) {
	var rows []struct {
		Visibility string `gorm:"column:visibility"`
	}
	err := tx.Raw(
		`SELECT v.visibility
         FROM qiita.study_artifact sa
         JOIN qiita.artifact a ON sa.artifact_id = a.artifact_id
         JOIN qiita.visibility v ON a.visibility_id = v.visibility_id
         WHERE sa.study_id = ?`, studyID,
	).Scan(&rows).Error
	if err != nil {
		return "", fmt.Errorf("%w: loading status for study %d: %v", ErrStore, studyID, err)
	}

	states := make([]string, 0, len(rows))
	for _, row := range rows {
		states = append(states, row.Visibility)
	}
	return mostVisible(states), nil
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
