// Package geo wraps the public Nominatim geocoder and OSRM router. Both are
// best-effort helpers; nothing in the optimizer depends on them.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/twpayne/go-polyline"
	"golang.org/x/time/rate"

	"travelmitr/internal/domain"
	"travelmitr/internal/metrics"
)

const userAgent = "TravelMitr/1.0"

// Place is a geocoded location.
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Route is an OSRM driving summary. Path holds [lat, lng] pairs of the
// simplified route geometry.
type Route struct {
	DistanceMeters  float64     `json:"distanceMeters"`
	DurationSeconds float64     `json:"durationSeconds"`
	Path            [][]float64 `json:"path"`
}

type Client struct {
	NominatimURL string
	OSRMURL      string
	HTTP         *http.Client
	limiter      *rate.Limiter
}

// NewClient builds a client that issues at most perSecond upstream requests.
func NewClient(nominatimURL, osrmURL string, perSecond float64) *Client {
	if perSecond <= 0 {
		perSecond = 1
	}
	return &Client{
		NominatimURL: strings.TrimRight(nominatimURL, "/"),
		OSRMURL:      strings.TrimRight(osrmURL, "/"),
		HTTP:         &http.Client{Timeout: 10 * time.Second},
		limiter:      rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

type nominatimHit struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Geocode returns the best match for query, or nil when there is none.
func (c *Client) Geocode(ctx context.Context, query string) (*Place, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("q", query)

	var hits []nominatimHit
	if err := c.getJSON(ctx, "nominatim", c.NominatimURL+"/search?"+q.Encode(), &hits); err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(hits[0].Lat, 64)
	if err != nil {
		return nil, domain.UpstreamError{Service: "nominatim", Err: err}
	}
	lng, err := strconv.ParseFloat(hits[0].Lon, 64)
	if err != nil {
		return nil, domain.UpstreamError{Service: "nominatim", Err: err}
	}
	return &Place{Name: hits[0].DisplayName, Lat: lat, Lng: lng}, nil
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry string  `json:"geometry"`
	} `json:"routes"`
}

// RouteSummary returns the driving route between two places, or nil when OSRM
// finds none.
func (c *Client) RouteSummary(ctx context.Context, from, to Place) (*Route, error) {
	coords := fmt.Sprintf("%f,%f;%f,%f", from.Lng, from.Lat, to.Lng, to.Lat)
	u := c.OSRMURL + "/route/v1/driving/" + coords + "?overview=simplified&geometries=polyline"

	var body osrmResponse
	if err := c.getJSON(ctx, "osrm", u, &body); err != nil {
		return nil, err
	}
	if len(body.Routes) == 0 {
		return nil, nil
	}
	r := body.Routes[0]
	out := &Route{DistanceMeters: r.Distance, DurationSeconds: r.Duration, Path: [][]float64{}}
	if r.Geometry != "" {
		path, _, err := polyline.DecodeCoords([]byte(r.Geometry))
		if err != nil {
			return nil, domain.UpstreamError{Service: "osrm", Err: err}
		}
		out.Path = path
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, rawURL string, dst any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domain.UpstreamError{Service: endpoint, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		metrics.GeoRequests.WithLabelValues(endpoint, "error").Inc()
		return domain.UpstreamError{Service: endpoint, Err: err}
	}
	defer resp.Body.Close()
	metrics.GeoRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		return domain.UpstreamError{Service: endpoint, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return domain.UpstreamError{Service: endpoint, Err: err}
	}
	return nil
}

// ErrNoMatch means a place name or route could not be resolved.
var ErrNoMatch = errors.New("geo: no match")

// Trip is a resolved pair of places with the route between them.
type Trip struct {
	From  Place `json:"from"`
	To    Place `json:"to"`
	Route Route `json:"route"`
}

// Between geocodes both names and routes between them.
func (c *Client) Between(ctx context.Context, from, to string) (Trip, error) {
	src, err := c.Geocode(ctx, from)
	if err != nil {
		return Trip{}, err
	}
	dst, err := c.Geocode(ctx, to)
	if err != nil {
		return Trip{}, err
	}
	if src == nil || dst == nil {
		return Trip{}, ErrNoMatch
	}
	route, err := c.RouteSummary(ctx, *src, *dst)
	if err != nil {
		return Trip{}, err
	}
	if route == nil {
		return Trip{}, ErrNoMatch
	}
	return Trip{From: *src, To: *dst, Route: *route}, nil
}
