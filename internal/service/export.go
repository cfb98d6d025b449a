package service

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"pointtrail/internal/repository"
)

const exportDateLayout = "2006-01-02 15:04:05"

// ExportActivity is one ledger row in the shape export consumers render.
type ExportActivity struct {
	Created      time.Time `json:"created"`
	ActivityType string    `json:"activity_type"`
	Points       int       `json:"points"`
	PostID       *uint     `json:"postid"`
	Description  string    `json:"description"`
}

// ExportData is the full ordered ledger for one user, ready to be rendered as
// CSV or JSON.
type ExportData struct {
	UserHandle  string           `json:"userhandle"`
	GeneratedAt time.Time        `json:"generated_at"`
	Activities  []ExportActivity `json:"activities"`
}

// Exporter builds per-user ledger exports keyed by handle.
type Exporter struct {
	reader *Reader
	users  *repository.UserRepository
}

func NewExporter(reader *Reader, users *repository.UserRepository) *Exporter {
	return &Exporter{reader: reader, users: users}
}

// Build returns the user's full history, most recent first.
func (s *Exporter) Build(handle string) (*ExportData, error) {
	u, err := s.users.GetByHandle(handle)
	if err != nil {
		return nil, err
	}
	entries, err := s.reader.ListForUser(u.ID, 0)
	if err != nil {
		return nil, err
	}
	data := &ExportData{
		UserHandle:  u.Handle,
		GeneratedAt: time.Now(),
		Activities:  make([]ExportActivity, 0, len(entries)),
	}
	for _, e := range entries {
		data.Activities = append(data.Activities, ExportActivity{
			Created:      e.CreatedAt,
			ActivityType: e.ActivityType,
			Points:       e.Points,
			PostID:       e.PostID,
			Description:  e.Description,
		})
	}
	return data, nil
}

// WriteCSV renders the export with the fixed column set consumers expect.
func (d *ExportData) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Activity", "Points", "Post ID", "Description"}); err != nil {
		return err
	}
	for _, a := range d.Activities {
		postID := ""
		if a.PostID != nil {
			postID = strconv.FormatUint(uint64(*a.PostID), 10)
		}
		row := []string{
			a.Created.Format(exportDateLayout),
			a.ActivityType,
			strconv.Itoa(a.Points),
			postID,
			a.Description,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
