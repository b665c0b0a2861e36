// Package feed fetches raw sensor readings from a ThingSpeak-style channel
// feed and converts them into analyzer readings.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Kamalbura/AQI/pkg/aqi"
	"github.com/Kamalbura/AQI/pkg/config"
	"go.uber.org/zap"
)

// DefaultEndpoint is the public ThingSpeak API host, used when the feed
// configuration does not name one.
const DefaultEndpoint = "https://api.thingspeak.com"

// ChannelResponse is the JSON shape of a channel feed query.
type ChannelResponse struct {
	Channel ChannelInfo `json:"channel"`
	Feeds   []Entry     `json:"feeds"`
}

// ChannelInfo carries the channel metadata; the fieldN members hold the
// channel's field labels, not values.
type ChannelInfo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Field1      string `json:"field1"`
	Field2      string `json:"field2"`
	Field3      string `json:"field3"`
	Field4      string `json:"field4"`
	Field5      string `json:"field5"`
	Field6      string `json:"field6"`
	Field7      string `json:"field7"`
	Field8      string `json:"field8"`
	LastEntryID int64  `json:"last_entry_id"`
}

// Entry is one feed row. Field values arrive as strings and may be JSON
// null, hence the string pointers.
type Entry struct {
	CreatedAt string  `json:"created_at"`
	EntryID   int64   `json:"entry_id"`
	Field1    *string `json:"field1"`
	Field2    *string `json:"field2"`
	Field3    *string `json:"field3"`
	Field4    *string `json:"field4"`
	Field5    *string `json:"field5"`
	Field6    *string `json:"field6"`
	Field7    *string `json:"field7"`
	Field8    *string `json:"field8"`
}

// Field returns the entry's value for a fieldN name, nil for names the
// feed does not carry.
func (e Entry) Field(name string) *string {
	switch name {
	case "field1":
		return e.Field1
	case "field2":
		return e.Field2
	case "field3":
		return e.Field3
	case "field4":
		return e.Field4
	case "field5":
		return e.Field5
	case "field6":
		return e.Field6
	case "field7":
		return e.Field7
	case "field8":
		return e.Field8
	}
	return nil
}

// Client fetches channel feeds over HTTP.
type Client struct {
	endpoint  string
	channelID string
	apiKey    string
	fields    config.FeedFieldsData
	client    *http.Client
	logger    *zap.SugaredLogger
}

// NewClient creates a feed client from the feed configuration.
func NewClient(fc config.FeedData, logger *zap.SugaredLogger) (*Client, error) {
	if fc.ChannelID == "" {
		return nil, fmt.Errorf("feed.channel_id is required")
	}

	endpoint := fc.Endpoint
	if endpoint == "" {
		logger.Infof("feed.endpoint not provided; defaulting to %s", DefaultEndpoint)
		endpoint = DefaultEndpoint
	}

	return &Client{
		endpoint:  endpoint,
		channelID: fc.ChannelID,
		apiKey:    fc.APIKey,
		fields:    fc.Fields,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger.Named("feed"),
	}, nil
}

// Fetch retrieves the most recent feed entries and converts them to
// readings, oldest first (the order the feed delivers them).
func (c *Client) Fetch(ctx context.Context, results int) ([]aqi.Reading, error) {
	v := url.Values{}
	v.Set("results", strconv.Itoa(results))
	if c.apiKey != "" {
		v.Set("api_key", c.apiKey)
	}

	feedURL := fmt.Sprintf("%s/channels/%s/feeds.json?%s", c.endpoint, c.channelID, v.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating feed request: %v", err)
	}

	c.logger.Debugf("Fetching channel feed: %v", feedURL)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching channel feed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s from feed", resp.Status)
	}

	var channel ChannelResponse
	if err := json.NewDecoder(resp.Body).Decode(&channel); err != nil {
		return nil, fmt.Errorf("unable to decode channel feed response: %v", err)
	}

	readings := make([]aqi.Reading, 0, len(channel.Feeds))
	for _, entry := range channel.Feeds {
		readings = append(readings, c.toReading(entry))
	}

	c.logger.Debugw("Channel feed fetched",
		"channel", channel.Channel.ID,
		"entries", len(readings))

	return readings, nil
}

func (c *Client) toReading(e Entry) aqi.Reading {
	return aqi.Reading{
		Timestamp:   e.CreatedAt,
		PM25:        ParseNullableFloat(e.Field(c.fields.PM25)),
		PM10:        ParseNullableFloat(e.Field(c.fields.PM10)),
		Temperature: ParseNullableFloat(e.Field(c.fields.Temperature)),
		Humidity:    ParseNullableFloat(e.Field(c.fields.Humidity)),
	}
}
