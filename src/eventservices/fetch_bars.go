package eventservices

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
)

func makeDailyBarsURL(symbol string, fromDate, toDate time.Time) (string, error) {
	parsedURL, err := url.Parse("https://api.polygon.io/v2/aggs/ticker")
	if err != nil {
		return "", fmt.Errorf("FetchDailyBars: failed to parse base URL: %w", err)
	}

	joinedPath := path.Join(parsedURL.Path, symbol, "range", "1", "day", fromDate.Format("2006-01-02"), toDate.Format("2006-01-02"))
	parsedURL.Path = joinedPath

	return parsedURL.String(), nil
}

func fetchDailyBarsPage(url, apiKey string) (*eventmodels.PolygonBarsResponse, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetchDailyBarsPage: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("sort", "asc")
	q.Add("adjusted", "true")
	q.Add("apiKey", apiKey)

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")

	log.Infof("fetching from %v", req.URL.String())

	client := http.Client{
		Timeout: 10 * time.Second,
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetchDailyBarsPage: failed to fetch bars: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetchDailyBarsPage: failed to fetch bars, http code %v", res.Status)
	}

	var dto eventmodels.PolygonBarsResponse
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("fetchDailyBarsPage: failed to decode json: %w", err)
	}

	return &dto, nil
}

// FetchDailyBars downloads daily aggregate bars for symbol between fromDate and
// toDate, following pagination until the full range is collected. The POLYGON_API_KEY
// environment variable must be set.
func FetchDailyBars(symbol string, fromDate, toDate time.Time) (eventmodels.BarSeries, error) {
	apiKey := os.Getenv("POLYGON_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("missing POLYGON_API_KEY environment")
	}

	backOff := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second, 32 * time.Second, 64 * time.Second, 128 * time.Second}
	var aggregateResult eventmodels.PolygonBarsResponse

	counter := 0
	isDone := false
	for {
		url, err := makeDailyBarsURL(symbol, fromDate, toDate)
		if err != nil {
			return nil, fmt.Errorf("FetchDailyBars: failed to make request URL: %w", err)
		}

		aggregateResult = eventmodels.PolygonBarsResponse{}

		if counter > 0 {
			log.Warnf("FetchDailyBars: backoff %v", backOff[counter])
			time.Sleep(backOff[counter])
		}

		if counter < len(backOff)-1 {
			counter++
		}

		for {
			resp, err := fetchDailyBarsPage(url, apiKey)
			if err != nil {
				log.Errorf("FetchDailyBars: failed to fetch bars page: %v", err)
				break
			}

			aggregateResult.QueryCount += resp.QueryCount
			aggregateResult.ResultsCount += resp.ResultsCount
			aggregateResult.Results = append(aggregateResult.Results, resp.Results...)

			if resp.NextURL == nil {
				isDone = true
				break
			}

			url = *resp.NextURL
			time.Sleep(50 * time.Millisecond)
		}

		if len(aggregateResult.Results) == 0 {
			return nil, fmt.Errorf("FetchDailyBars: no results found for %s", symbol)
		}

		if isDone {
			break
		}
	}

	bars := aggregateResult.ToBarSeries()
	if err := bars.Validate(); err != nil {
		return nil, fmt.Errorf("FetchDailyBars: fetched bars failed validation: %w", err)
	}

	return bars, nil
}
