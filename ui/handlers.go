package ui

import (
	"net/http"
	"strconv"

	"pulsex/domain/survey"
	"pulsex/internal/analysis"
	"pulsex/internal/errors"
	"pulsex/internal/profiling"
	"pulsex/ui/middleware"

	"github.com/gin-gonic/gin"
)

// sliceDisplay carries the formatted metrics shown next to the bar charts
type sliceDisplay struct {
	SliceReceived     string `json:"slice_received"`
	SliceIntention    string `json:"slice_intention"`
	NonSliceReceived  string `json:"non_slice_received"`
	NonSliceIntention string `json:"non_slice_intention"`
}

type sliceResponse struct {
	*analysis.SliceReport
	Display sliceDisplay `json:"display"`
}

func (s *Server) handleHealth(c *gin.Context) {
	table := s.dataset.Table()
	if table == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"rows":   table.Len(),
		"source": s.dataset.Source(),
	})
}

// handleIndex serves the dashboard, pre-filled with the session's last slice
func (s *Server) handleIndex(c *gin.Context) {
	table := s.dataset.Table()
	options := analysis.BuildFilterOptions(table)

	criteria := survey.Criteria{Age: options.DefaultAgeRange()}
	if sessionID, ok := middleware.SessionID(c); ok {
		if last, found := s.sessions.LastCriteria(c.Request.Context(), sessionID); found {
			criteria = last
		}
	}

	s.renderTemplate(c, dashboardTemplate, gin.H{
		"Title":          s.layout.Title,
		"IntentionLabel": s.layout.IntentionLabel,
		"Source":         s.dataset.Source(),
		"Rows":           table.Len(),
		"Options":        options,
		"Criteria":       criteria,
	})
}

func (s *Server) handleOptions(c *gin.Context) {
	c.JSON(http.StatusOK, analysis.BuildFilterOptions(s.dataset.Table()))
}

func (s *Server) handleOverview(c *gin.Context) {
	overview := analysis.BuildOverview(
		s.dataset.Table(),
		queryValues(c, "race"),
		queryValues(c, "education"),
		s.layout.EducationOrder,
	)
	c.JSON(http.StatusOK, overview)
}

func (s *Server) handleSlice(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	table := s.dataset.Table()
	labels := s.membership(table, criteria)
	report := analysis.BuildSliceReport(table, criteria, labels, s.reasonPrefix)

	if sessionID, ok := middleware.SessionID(c); ok {
		if err := s.sessions.SaveCriteria(c.Request.Context(), sessionID, criteria); err != nil {
			s.logger.Warn("[handleSlice] Failed to save criteria for session %s: %v", sessionID, err)
		}
	}

	s.logger.Debug("[handleSlice] %d of %d rows in slice %s", report.SliceSize, report.TotalRows, criteria.Canonical())

	c.JSON(http.StatusOK, sliceResponse{
		SliceReport: report,
		Display: sliceDisplay{
			SliceReceived:     report.Slice.ReceivedVaccine.Percent(),
			SliceIntention:    report.Slice.VaccineIntention.Rounded(),
			NonSliceReceived:  report.NonSlice.ReceivedVaccine.Percent(),
			NonSliceIntention: report.NonSlice.VaccineIntention.Rounded(),
		},
	})
}

func (s *Server) handleSample(c *gin.Context) {
	onlyUnvaccinated := false
	if raw, ok := c.GetQuery("no_vaccine"); ok && raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			s.respondError(c, errors.InvalidInput("no_vaccine must be a boolean"))
			return
		}
		onlyUnvaccinated = v
	}

	table := s.dataset.Table()
	row, err := s.samplePerson(table, onlyUnvaccinated)
	if err != nil {
		s.respondError(c, err)
		return
	}

	person, err := analysis.DescribePerson(table, row, s.reasonPrefix)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

func (s *Server) handleRecords(c *gin.Context) {
	table := s.dataset.Table()

	offset, limit, err := parsePage(c, table.Len())
	if err != nil {
		s.respondError(c, err)
		return
	}

	end := offset + limit
	if end > table.Len() {
		end = table.Len()
	}

	records := make([]map[string]survey.Value, 0, end-offset)
	for row := offset; row < end; row++ {
		records = append(records, table.Record(row))
	}

	c.JSON(http.StatusOK, gin.H{
		"columns": table.Columns(),
		"records": records,
		"offset":  offset,
		"limit":   limit,
		"total":   table.Len(),
	})
}

// handleProfile describes every column of the loaded table
func (s *Server) handleProfile(c *gin.Context) {
	table := s.dataset.Table()
	c.JSON(http.StatusOK, gin.H{
		"source":  s.dataset.Source(),
		"rows":    table.Len(),
		"columns": profiling.NewDataProfiler().ProfileTable(table),
	})
}

// handleSession returns the criteria last viewed by this browser session
func (s *Server) handleSession(c *gin.Context) {
	sessionID, ok := middleware.SessionID(c)
	if !ok {
		s.respondError(c, errors.InternalError("session middleware not installed"))
		return
	}
	criteria, found := s.sessions.LastCriteria(c.Request.Context(), sessionID)
	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID.String(),
		"found":      found,
		"criteria":   criteria,
	})
}

// respondError maps an AppError code to an HTTP status
func (s *Server) respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.CodeInvalidRange, errors.CodeInvalidInput, errors.CodeInvalidValue:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("[%s] %v", c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}
