package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/machinebox/graphql"
	"golang.org/x/sync/errgroup"

	"github.com/IceRabbit1999/watchingir/internal/core/dtos"
	"github.com/IceRabbit1999/watchingir/internal/core/models"
)

const (
	matchAPIBaseURL = "https://api.steampowered.com/IDOTA2Match_570"
	stratzAPIURL    = "https://api.stratz.com/graphql"
)

// CourierService talks to the two remote APIs: the Steam Web API for match
// lookups and the STRATZ GraphQL API for reference data. It does no caching
// and no retries; every failure maps to one of the typed errors in models.
type CourierService struct {
	client        *http.Client
	graphqlClient *graphql.Client
	matchBaseURL  string
}

func NewCourierService() *CourierService {
	client := &http.Client{}
	return &CourierService{
		client:        client,
		graphqlClient: graphql.NewClient(stratzAPIURL, graphql.WithHTTPClient(client)),
		matchBaseURL:  matchAPIBaseURL,
	}
}

// LatestMatchDetail runs the two-hop lookup for one account: history first
// to obtain the newest match's sequence number, then detail by sequence
// number. The detail hop is never issued without a cursor from the first.
func (s *CourierService) LatestMatchDetail(ctx context.Context, key string, accountID int64) (dtos.MatchDetailResponse, error) {
	history, err := s.getMatchHistory(ctx, key, accountID, 1)
	if err != nil {
		return dtos.MatchDetailResponse{}, err
	}

	if len(history.Result.Matches) == 0 {
		return dtos.MatchDetailResponse{}, models.NoDataError{What: "sequence cursor"}
	}
	sequence := history.Result.Matches[0].MatchSeqNum

	return s.getMatchDetail(ctx, key, sequence)
}

// LatestMatchDetailForMany runs the single-account lookup once per friend,
// concurrently. The first failure cancels the rest and fails the whole
// batch; no partial results are returned.
func (s *CourierService) LatestMatchDetailForMany(ctx context.Context, key string, accountIDs []int64) ([]dtos.MatchDetailResponse, error) {
	group, groupCtx := errgroup.WithContext(ctx)
	responses := make([]dtos.MatchDetailResponse, len(accountIDs))

	for i, accountID := range accountIDs {
		i, accountID := i, accountID
		group.Go(func() error {
			resp, err := s.LatestMatchDetail(groupCtx, key, accountID)
			if err != nil {
				return err
			}
			responses[i] = resp
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return responses, nil
}

// Constants fetches the item and hero name tables from STRATZ in a single
// hardcoded GraphQL query.
func (s *CourierService) Constants(ctx context.Context, stratzKey string) (dtos.ConstantResponse, error) {
	req := graphql.NewRequest(dtos.ConstantQuery)
	req.Header.Set("Authorization", "Bearer "+stratzKey)

	var resp dtos.ConstantResponse
	if err := s.graphqlClient.Run(ctx, req, &resp); err != nil {
		if isDecodeError(err) {
			return dtos.ConstantResponse{}, models.MalformedResponseError{Shape: "Constant", Err: err}
		}
		return dtos.ConstantResponse{}, models.RemoteCallError{Endpoint: "reference-data", Err: err}
	}
	return resp, nil
}

func (s *CourierService) getMatchHistory(ctx context.Context, key string, accountID int64, matchesRequested int) (dtos.MatchHistoryResponse, error) {
	requestURL := fmt.Sprintf("%s/GetMatchHistory/V001/?key=%s&account_id=%d&matches_requested=%d",
		s.matchBaseURL, url.QueryEscape(key), accountID, matchesRequested)

	var history dtos.MatchHistoryResponse
	if err := s.get(ctx, requestURL, "history", "MatchHistory", &history); err != nil {
		return dtos.MatchHistoryResponse{}, err
	}
	return history, nil
}

func (s *CourierService) getMatchDetail(ctx context.Context, key string, sequence int64) (dtos.MatchDetailResponse, error) {
	// GetMatchDetails is broken upstream, so fetch by sequence number instead.
	requestURL := fmt.Sprintf("%s/GetMatchHistoryBySequenceNum/V001/?key=%s&start_at_match_seq_num=%d&matches_requested=1",
		s.matchBaseURL, url.QueryEscape(key), sequence)

	var detail dtos.MatchDetailResponse
	if err := s.get(ctx, requestURL, "detail", "MatchDetail", &detail); err != nil {
		return dtos.MatchDetailResponse{}, err
	}
	return detail, nil
}

func (s *CourierService) get(ctx context.Context, requestURL, endpoint, shape string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return models.RemoteCallError{Endpoint: endpoint, Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return models.RemoteCallError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.RemoteCallError{Endpoint: endpoint, Err: fmt.Errorf("status code %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return models.MalformedResponseError{Shape: shape, Err: err}
	}
	return nil
}

// isDecodeError reports whether a graphql client error originated in JSON
// decoding rather than transport. machinebox wraps the cause, so unwrapping
// reaches the original json error when there is one.
func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
