package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/taskmate/internal/domain"
)

// BridgeClient is the real-backend Source: it invokes the analytics service
// over HTTP with a method name and a JSON parameter object, the same calling
// convention the service exposes to its other consumers. Every call carries a
// bounded timeout; any failure surfaces as ErrBackendUnavailable so the
// resilient wrapper can fall through to static data.
type BridgeClient struct {
	cfg  Config
	http *http.Client
}

// NewBridgeClient creates a Source backed by the analytics service at
// cfg.Endpoint.
func NewBridgeClient(cfg Config) *BridgeClient {
	return &BridgeClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// bridgeRequest is the JSON body sent to POST /rpc.
type bridgeRequest struct {
	Method string `json:"method"`
	Params any    `json:"params"`
}

// wireMember is the backend's member representation ("uid", not "user_id").
type wireMember struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
}

type teamMembersResult struct {
	Success     bool         `json:"success"`
	TeamMembers []wireMember `json:"team_members"`
}

type snapshotResult struct {
	Success   bool `json:"success"`
	Analytics struct {
		CurrentWorkload    int                     `json:"current_workload"`
		ExpertiseByCateg   domain.ExpertiseProfile `json:"expertise_by_category"`
		HistoricalCapacity int                     `json:"historical_capacity"`
	} `json:"analytics"`
}

type recordResult struct {
	Success bool `json:"success"`
}

func (c *BridgeClient) TeamMembers(ctx context.Context, groupID string) ([]domain.Member, error) {
	var res teamMembersResult
	if err := c.call(ctx, "getTeamMembers", map[string]string{"group_id": groupID}, &res); err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, fmt.Errorf("%w: getTeamMembers reported failure", ErrBackendUnavailable)
	}

	members := make([]domain.Member, 0, len(res.TeamMembers))
	for _, m := range res.TeamMembers {
		members = append(members, domain.Member{UserID: m.UID, Username: m.Username})
	}
	return members, nil
}

func (c *BridgeClient) Snapshot(ctx context.Context, userID string) (domain.AnalyticsSnapshot, error) {
	var res snapshotResult
	if err := c.call(ctx, "getUserAnalyticsSummary", map[string]string{"user_id": userID}, &res); err != nil {
		return domain.AnalyticsSnapshot{}, err
	}
	if !res.Success {
		return domain.AnalyticsSnapshot{}, fmt.Errorf("%w: getUserAnalyticsSummary reported failure", ErrBackendUnavailable)
	}

	return domain.AnalyticsSnapshot{
		Workload:   res.Analytics.CurrentWorkload,
		Capacity:   res.Analytics.HistoricalCapacity,
		Expertise:  res.Analytics.ExpertiseByCateg,
		DataSource: domain.SourceReal,
	}, nil
}

func (c *BridgeClient) RecordAssignment(ctx context.Context, rec AssignmentRecord) (domain.DataSource, error) {
	params := map[string]string{
		"task_id":  rec.TaskID,
		"user_id":  rec.UserID,
		"group_id": rec.GroupID,
		"category": rec.Category,
	}
	var res recordResult
	if err := c.call(ctx, "recordTaskAssignment", params, &res); err != nil {
		return "", err
	}
	if !res.Success {
		return "", fmt.Errorf("%w: recordTaskAssignment reported failure", ErrBackendUnavailable)
	}
	return domain.SourceReal, nil
}

func (c *BridgeClient) RecordCompletion(ctx context.Context, rec CompletionRecord) (domain.DataSource, error) {
	params := map[string]any{
		"task_id": rec.TaskID,
		"success": rec.Success,
	}
	var res recordResult
	if err := c.call(ctx, "recordTaskCompletion", params, &res); err != nil {
		return "", err
	}
	if !res.Success {
		return "", fmt.Errorf("%w: recordTaskCompletion reported failure", ErrBackendUnavailable)
	}
	return domain.SourceReal, nil
}

// call performs one bounded RPC round trip and decodes the response into out.
func (c *BridgeClient) call(ctx context.Context, method string, params, out any) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	data, err := json.Marshal(bridgeRequest{Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("%w: marshaling %s request: %v", ErrBackendUnavailable, method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/rpc", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: creating %s request: %v", ErrBackendUnavailable, method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBackendUnavailable, method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading %s response: %v", ErrBackendUnavailable, method, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned status %d", ErrBackendUnavailable, method, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %v", ErrBackendUnavailable, method, err)
	}
	return nil
}
