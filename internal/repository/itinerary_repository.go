package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/database"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
)

// ErrNotFound is returned when an itinerary does not exist
var ErrNotFound = errors.New("itinerary not found")

const timeLayout = time.RFC3339Nano

// ItineraryRepository handles database operations for itineraries and their segments
type ItineraryRepository struct {
	db *sql.DB
}

// NewItineraryRepository creates a new itinerary repository
func NewItineraryRepository(db *sql.DB) *ItineraryRepository {
	return &ItineraryRepository{db: db}
}

// Create inserts the itinerary row and all of its segments
func (r *ItineraryRepository) Create(it *models.Itinerary) error {
	travelers, err := json.Marshal(travelersOrEmpty(it.Travelers))
	if err != nil {
		return fmt.Errorf("failed to encode travelers: %w", err)
	}

	return database.WithTx(r.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO itineraries
			(id, title, description, start_date, end_date, travelers, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			it.ID, it.Title, it.Description,
			formatOptional(it.StartDate), formatOptional(it.EndDate), string(travelers),
			it.CreatedAt.UTC().Format(timeLayout), it.UpdatedAt.UTC().Format(timeLayout),
		)
		if err != nil {
			return fmt.Errorf("failed to insert itinerary: %w", err)
		}
		return insertSegments(tx, it.ID, it.Segments)
	})
}

// Get loads an itinerary with its segments in stored order
func (r *ItineraryRepository) Get(id string) (*models.Itinerary, error) {
	var (
		it                 models.Itinerary
		startDate, endDate sql.NullString
		travelers          string
		createdAt          string
		updatedAt          string
	)
	err := r.db.QueryRow(`SELECT id, title, description, start_date, end_date, travelers, created_at, updated_at
		FROM itineraries WHERE id = ?`, id).
		Scan(&it.ID, &it.Title, &it.Description, &startDate, &endDate, &travelers, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query itinerary: %w", err)
	}

	if it.StartDate, err = parseOptional(startDate); err != nil {
		return nil, err
	}
	if it.EndDate, err = parseOptional(endDate); err != nil {
		return nil, err
	}
	if it.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if it.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	if err := json.Unmarshal([]byte(travelers), &it.Travelers); err != nil {
		return nil, fmt.Errorf("failed to decode travelers: %w", err)
	}

	segments, err := r.segments(id)
	if err != nil {
		return nil, err
	}
	it.Segments = segments
	return &it, nil
}

func (r *ItineraryRepository) segments(itineraryID string) ([]models.Segment, error) {
	rows, err := r.db.Query(`SELECT payload FROM segments WHERE itinerary_id = ? ORDER BY position`, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query segments: %w", err)
	}
	defer rows.Close()

	segments := make([]models.Segment, 0)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan segment: %w", err)
		}
		seg, err := models.UnmarshalSegment([]byte(payload))
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, rows.Err()
}

// List retrieves itinerary summaries with filtering and pagination
func (r *ItineraryRepository) List(filter models.ItineraryFilter) ([]models.ItinerarySummary, int64, error) {
	var conditions []string
	var args []interface{}

	if filter.Title != "" {
		conditions = append(conditions, "LOWER(i.title) LIKE ?")
		args = append(args, "%"+strings.ToLower(filter.Title)+"%")
	}
	if filter.Traveler != "" {
		conditions = append(conditions, "i.travelers LIKE ?")
		args = append(args, `%"id":"`+filter.Traveler+`"%`)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM itineraries i"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count itineraries: %w", err)
	}

	normalizePage(&filter)
	query := `SELECT i.id, i.title, i.description, i.start_date, i.end_date, i.created_at, i.updated_at,
		(SELECT COUNT(*) FROM segments s WHERE s.itinerary_id = i.id)
		FROM itineraries i` + where + ` ORDER BY i.updated_at DESC, i.id LIMIT ? OFFSET ?`
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query itineraries: %w", err)
	}
	defer rows.Close()

	summaries := make([]models.ItinerarySummary, 0)
	for rows.Next() {
		var (
			s                    models.ItinerarySummary
			startDate, endDate   sql.NullString
			createdAt, updatedAt string
		)
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &startDate, &endDate, &createdAt, &updatedAt, &s.SegmentCount); err != nil {
			return nil, 0, fmt.Errorf("failed to scan itinerary: %w", err)
		}
		if s.StartDate, err = parseOptional(startDate); err != nil {
			return nil, 0, err
		}
		if s.EndDate, err = parseOptional(endDate); err != nil {
			return nil, 0, err
		}
		s.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		s.UpdatedAt, _ = time.Parse(timeLayout, updatedAt)
		summaries = append(summaries, s)
	}
	return summaries, total, rows.Err()
}

// ReplaceSegments swaps the whole segment list of an itinerary atomically
func (r *ItineraryRepository) ReplaceSegments(id string, segments []models.Segment, updatedAt time.Time) error {
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		res, err := tx.Exec(`UPDATE itineraries SET updated_at = ? WHERE id = ?`, updatedAt.UTC().Format(timeLayout), id)
		if err != nil {
			return fmt.Errorf("failed to touch itinerary: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrNotFound
		}
		if _, err := tx.Exec(`DELETE FROM segments WHERE itinerary_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete segments: %w", err)
		}
		return insertSegments(tx, id, segments)
	})
}

// Delete removes an itinerary and, through the foreign key, its segments
func (r *ItineraryRepository) Delete(id string) error {
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM segments WHERE itinerary_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete segments: %w", err)
		}
		res, err := tx.Exec(`DELETE FROM itineraries WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete itinerary: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func insertSegments(tx *sql.Tx, itineraryID string, segments []models.Segment) error {
	stmt, err := tx.Prepare(`INSERT INTO segments
		(id, itinerary_id, position, kind, start_datetime, end_datetime, inferred, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare segment insert: %w", err)
	}
	defer stmt.Close()

	for i, seg := range segments {
		payload, err := json.Marshal(seg)
		if err != nil {
			return fmt.Errorf("failed to encode segment %s: %w", seg.Base().ID, err)
		}
		b := seg.Base()
		_, err = stmt.Exec(b.ID, itineraryID, i, string(seg.Kind()),
			b.StartDatetime.UTC().Format(timeLayout), b.EndDatetime.UTC().Format(timeLayout),
			b.Inferred, string(payload))
		if err != nil {
			return fmt.Errorf("failed to insert segment %s: %w", b.ID, err)
		}
	}
	return nil
}

func normalizePage(f *models.ItineraryFilter) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 50
	}
	if f.PageSize > 500 {
		f.PageSize = 500
	}
}

func travelersOrEmpty(t []models.Traveler) []models.Traveler {
	if t == nil {
		return []models.Traveler{}
	}
	return t
}

func formatOptional(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(timeLayout)
}

func parseOptional(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(timeLayout, s.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}
	return &t, nil
}
