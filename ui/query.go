package ui

import (
	"strconv"
	"strings"

	"pulsex/domain/survey"
	"pulsex/internal/errors"

	"github.com/gin-gonic/gin"
)

const (
	defaultRecordLimit = 50
	maxRecordLimit     = 500
)

// parseCriteria reads slice criteria from repeated query parameters.
// An absent age bound is open on that side; both absent leaves age unconstrained.
func parseCriteria(c *gin.Context) (survey.Criteria, error) {
	criteria := survey.Criteria{
		Genders:    queryValues(c, "gender"),
		Races:      queryValues(c, "race"),
		Educations: queryValues(c, "education"),
	}

	minRaw, hasMin := c.GetQuery("age_min")
	maxRaw, hasMax := c.GetQuery("age_max")
	ageRange, err := survey.ParseAgeBounds(minRaw, hasMin, maxRaw, hasMax)
	if err != nil {
		return survey.Criteria{}, err
	}
	criteria.Age = ageRange
	return criteria, nil
}

// queryValues returns the non-empty values of a repeated query parameter
func queryValues(c *gin.Context, key string) []string {
	var values []string
	for _, v := range c.QueryArray(key) {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func parsePage(c *gin.Context, total int) (offset, limit int, err error) {
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, errors.InvalidInput("offset must be a non-negative integer")
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultRecordLimit)))
	if err != nil || limit < 1 {
		return 0, 0, errors.InvalidInput("limit must be a positive integer")
	}
	if limit > maxRecordLimit {
		limit = maxRecordLimit
	}
	if offset > total {
		offset = total
	}
	return offset, limit, nil
}
