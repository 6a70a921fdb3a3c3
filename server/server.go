// Package server exposes the pipeline over a JSON API. Every handler is a
// thin shim: parse query parameters, call the core, serialize the result.
package server

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"zomato-insights/models"
	"zomato-insights/services"
	"zomato-insights/utils"
)

// Server serves the normalized table over HTTP.
type Server struct {
	table    []*models.Restaurant
	insights *services.InsightService
	logger   *utils.Logger
}

// New creates a Server over an already-loaded table.
func New(table []*models.Restaurant, logger *utils.Logger) *Server {
	return &Server{
		table:    table,
		insights: services.NewInsightService(logger),
		logger:   logger,
	}
}

// Run starts listening on addr and blocks.
func (s *Server) Run(addr string) error {
	s.logger.Info("[server] Listening on %s", addr)
	return s.router().Run(addr)
}

func (s *Server) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "restaurants": len(s.table)})
	})

	api := router.Group("/api")
	api.GET("/summary", s.summary)
	api.GET("/restaurants", s.restaurants)
	api.GET("/frequency", s.frequency)
	api.GET("/cuisines", s.cuisines)
	api.GET("/profile", s.profile)
	api.GET("/top", s.top)
	api.GET("/correlation", s.correlation)
	api.GET("/search", s.search)

	return router
}

// filterSpec builds a FilterSpec from the shared query parameters
// location, price_category and min_rating. Ratings live in [0,5], so a
// negative min_rating from the query collapses to 0.
func filterSpec(c *gin.Context) services.FilterSpec {
	minRating := parseFloat(c.Query("min_rating"), 0)
	if minRating < 0 {
		minRating = 0
	}
	return services.FilterSpec{
		Location:      c.Query("location"),
		PriceCategory: models.PriceCategory(c.Query("price_category")),
		MinRating:     minRating,
	}
}

func (s *Server) filtered(c *gin.Context) []*models.Restaurant {
	return services.Filter(s.table, filterSpec(c))
}

func (s *Server) summary(c *gin.Context) {
	c.JSON(http.StatusOK, s.insights.Summary(s.filtered(c)))
}

func (s *Server) restaurants(c *gin.Context) {
	filtered := s.filtered(c)
	limit := parseInt(c.Query("limit"), 100)
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	c.JSON(http.StatusOK, gin.H{"total": len(filtered), "items": filtered})
}

func (s *Server) frequency(c *gin.Context) {
	field := models.Field(c.Query("field"))
	if field == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field parameter required"})
		return
	}
	counts := s.insights.FrequencyCount(s.filtered(c), field, parseInt(c.Query("top"), 15))
	c.JSON(http.StatusOK, counts)
}

func (s *Server) cuisines(c *gin.Context) {
	counts := s.insights.ExplodedFrequencyCount(
		s.filtered(c), models.FieldCuisines, parseInt(c.Query("top"), 15))
	c.JSON(http.StatusOK, counts)
}

func (s *Server) profile(c *gin.Context) {
	filtered := s.filtered(c)
	top := s.insights.FrequencyCount(filtered, models.FieldLocation, parseInt(c.Query("top"), 10))
	keys := make([]string, 0, len(top))
	for _, vc := range top {
		keys = append(keys, vc.Value)
	}
	c.JSON(http.StatusOK, s.insights.GroupedProfile(filtered, models.FieldLocation, keys))
}

func (s *Server) top(c *gin.Context) {
	field := models.Field(c.Query("by"))
	switch field {
	case models.FieldRating, models.FieldVotes, models.FieldCost:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "by must be one of rate, votes, cost"})
		return
	}
	c.JSON(http.StatusOK, s.insights.TopNBy(s.filtered(c), field, parseInt(c.Query("n"), 10)))
}

func (s *Server) correlation(c *gin.Context) {
	fields := []models.Field{models.FieldRating, models.FieldVotes, models.FieldCost}
	corr := s.insights.CorrelationMatrix(s.filtered(c), fields)

	// encoding/json cannot represent NaN; undefined cells become null.
	cells := make([][]*float64, len(corr.Values))
	for i, row := range corr.Values {
		cells[i] = make([]*float64, len(row))
		for j, v := range row {
			if !math.IsNaN(v) {
				value := v
				cells[i][j] = &value
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"fields": corr.Fields, "values": cells})
}

func (s *Server) search(c *gin.Context) {
	results := services.Search(s.filtered(c), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"total": len(results), "items": results})
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseFloat(s string, def float64) float64 {
	if strings.TrimSpace(s) == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}
