package scout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/glowuprizz/go_scout/internal/engine"
)

// fakeChannelAPI layers discovery on top of fakeVideoAPI.
type fakeChannelAPI struct {
	fakeVideoAPI
	refs        map[string][]engine.ChannelRef
	channels    map[string]*engine.Channel
	searchErr   map[string]error
	detailErr   map[string]error
	searchCalls int
}

func (f *fakeChannelAPI) Search(_ context.Context, keyword, _, _ string, _ int) ([]engine.ChannelRef, error) {
	f.searchCalls++
	if err := f.searchErr[keyword]; err != nil {
		return nil, err
	}
	return f.refs[keyword], nil
}

func (f *fakeChannelAPI) ChannelDetail(_ context.Context, id string) (*engine.Channel, error) {
	if err := f.detailErr[id]; err != nil {
		return nil, err
	}
	return f.channels[id], nil
}

func uploadsFor(views int64) []engine.Video {
	vids := make([]engine.Video, 10)
	for i := range vids {
		vids[i] = engine.Video{DurationSec: 600, Views: views, PublishedAt: time.Now()}
	}
	return vids
}

func TestRunPipeline_EndToEnd(t *testing.T) {
	api := &fakeChannelAPI{
		refs: map[string][]engine.ChannelRef{
			"camping": {{ID: "C1"}, {ID: "C2"}, {ID: "C3"}},
			"hiking":  {{ID: "C1"}, {ID: "C4"}}, // C1 repeats across keywords
		},
		channels: map[string]*engine.Channel{
			"C1": {ID: "C1", Title: "Camp Korea", UploadsID: "U1", Subscribers: 100000, Description: "biz: camp@example.com"},
			"C2": {ID: "C2", Title: "Blocked Channel", UploadsID: "U2", Subscribers: 50000},
			"C3": {ID: "C3", Title: "Tiny Channel", UploadsID: "U3", Subscribers: 100},
			"C4": {ID: "C4", Title: "Hike Daily", UploadsID: "U4", Subscribers: 10000, Description: "no address here, DM only please"},
		},
	}
	api.uploads = map[string][]engine.Video{
		"U1": uploadsFor(20000), // eff 0.2
		"U3": uploadsFor(10),
		"U4": uploadsFor(9000), // eff 0.9
	}
	model := &fakeModel{reply: "None"}

	res, err := RunPipeline(context.Background(), api, model, PipelineOpts{
		Keywords: []string{"camping", "hiking"},
		Exclude:  map[string]struct{}{"Blocked Channel": {}},
		Score: ScoreConfig{
			MinSubscribers: 1000,
			MaxSubscribers: 1000000,
			MinEfficiency:  0.1,
		},
	})
	require.NoError(t, err)
	require.False(t, res.QuotaExhausted)

	// C1 deduplicated, C2 excluded, C3 out of range.
	require.Equal(t, 4, res.Scanned)
	require.Len(t, res.Candidates, 2)

	// Ranked by efficiency: C4 (0.9) before C1 (0.2).
	require.Equal(t, "C4", res.Candidates[0].ID)
	require.Equal(t, NotFoundEmail, res.Candidates[0].Email)
	require.Equal(t, "C1", res.Candidates[1].ID)
	require.Equal(t, "camp@example.com", res.Candidates[1].Email)
}

func TestRunPipeline_QuotaHaltsBatch(t *testing.T) {
	api := &fakeChannelAPI{
		refs: map[string][]engine.ChannelRef{
			"first": {{ID: "C1"}},
		},
		searchErr: map[string]error{
			"first":  engine.ErrQuotaExhausted,
			"second": nil,
		},
	}

	res, err := RunPipeline(context.Background(), api, nil, PipelineOpts{
		Keywords: []string{"first", "second"},
	})
	require.NoError(t, err)
	require.True(t, res.QuotaExhausted)
	require.Equal(t, 1, api.searchCalls, "batch must halt on quota exhaustion, not keep spending")
}

func TestRunPipeline_TransientFailureSkipsItem(t *testing.T) {
	api := &fakeChannelAPI{
		refs: map[string][]engine.ChannelRef{
			"kw": {{ID: "C1"}, {ID: "C2"}},
		},
		channels: map[string]*engine.Channel{
			"C2": {ID: "C2", Title: "Survivor", UploadsID: "U2", Subscribers: 1000, Description: "hi@example.com"},
		},
		detailErr: map[string]error{"C1": errors.New("500 from upstream")},
	}
	api.uploads = map[string][]engine.Video{"U2": uploadsFor(5000)}

	res, err := RunPipeline(context.Background(), api, nil, PipelineOpts{
		Keywords: []string{"kw"},
		Score:    ScoreConfig{MaxSubscribers: 1000000},
	})
	require.NoError(t, err)
	require.Len(t, res.Candidates, 1, "one bad channel must not abort the batch")
	require.Equal(t, "C2", res.Candidates[0].ID)
}
