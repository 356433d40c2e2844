package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"

	"github.com/harborview/lens/internal/model"
)

// startTestNATS starts an embedded NATS server and returns its client URL.
func startTestNATS(t *testing.T) string {
	t.Helper()
	opts := &natsserver.Options{Host: "127.0.0.1", Port: -1}
	srv, err := natsserver.NewServer(opts)
	if err != nil {
		t.Fatalf("starting embedded NATS: %v", err)
	}
	srv.Start()
	t.Cleanup(srv.Shutdown)
	if !srv.ReadyForConnections(5 * time.Second) {
		t.Fatal("embedded NATS not ready")
	}
	return srv.ClientURL()
}

func TestNATSPublisher_PublishesJSON(t *testing.T) {
	url := startTestNATS(t)

	pub, err := NewNATSPublisher(url)
	if err != nil {
		t.Fatalf("creating publisher: %v", err)
	}
	defer pub.Close()

	nc, err := nats.Connect(url)
	if err != nil {
		t.Fatalf("connecting subscriber: %v", err)
	}
	defer nc.Close()

	ch := make(chan *nats.Msg, 1)
	sub, err := nc.ChanSubscribe(TopicSearchCreated, ch)
	if err != nil {
		t.Fatalf("subscribing: %v", err)
	}
	defer sub.Unsubscribe()
	nc.Flush()

	event := SearchCreated{Search: &model.SavedSearch{ID: "ls-1", Name: "my projects", CreatedBy: "alice"}}
	if err := pub.Publish(context.Background(), TopicSearchCreated, event); err != nil {
		t.Fatalf("publishing: %v", err)
	}
	pub.conn.Flush()

	select {
	case msg := <-ch:
		var got SearchCreated
		if err := json.Unmarshal(msg.Data, &got); err != nil {
			t.Fatalf("unmarshaling event: %v", err)
		}
		if got.Search == nil || got.Search.ID != "ls-1" || got.Search.CreatedBy != "alice" {
			t.Errorf("got %+v", got.Search)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestNATSPublisher_WildcardCoversAllTopics(t *testing.T) {
	url := startTestNATS(t)

	pub, err := NewNATSPublisher(url)
	if err != nil {
		t.Fatalf("creating publisher: %v", err)
	}
	defer pub.Close()

	nc, err := nats.Connect(url)
	if err != nil {
		t.Fatalf("connecting subscriber: %v", err)
	}
	defer nc.Close()

	ch := make(chan *nats.Msg, 4)
	sub, err := nc.ChanSubscribe("lens.>", ch)
	if err != nil {
		t.Fatalf("subscribing: %v", err)
	}
	defer sub.Unsubscribe()
	nc.Flush()

	ctx := context.Background()
	if err := pub.Publish(ctx, TopicSearchUpdated, SearchUpdated{Search: &model.SavedSearch{ID: "ls-1"}}); err != nil {
		t.Fatalf("publishing updated: %v", err)
	}
	if err := pub.Publish(ctx, TopicSearchDeleted, SearchDeleted{SearchID: "ls-1", DeletedBy: "alice"}); err != nil {
		t.Fatalf("publishing deleted: %v", err)
	}
	if err := pub.Publish(ctx, TopicSearchExecuted, SearchExecuted{SearchID: "ls-1", ExecutedBy: "bob", ResultCount: 3}); err != nil {
		t.Fatalf("publishing executed: %v", err)
	}
	pub.conn.Flush()

	want := map[string]bool{
		TopicSearchUpdated:  false,
		TopicSearchDeleted:  false,
		TopicSearchExecuted: false,
	}
	for i := 0; i < len(want); i++ {
		select {
		case msg := <-ch:
			want[msg.Subject] = true
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
	for topic, seen := range want {
		if !seen {
			t.Errorf("no event received on %s", topic)
		}
	}
}

func TestNATSPublisher_UnmarshalableEvent(t *testing.T) {
	url := startTestNATS(t)

	pub, err := NewNATSPublisher(url)
	if err != nil {
		t.Fatalf("creating publisher: %v", err)
	}
	defer pub.Close()

	if err := pub.Publish(context.Background(), TopicSearchCreated, make(chan int)); err == nil {
		t.Fatal("expected marshal error for unserializable event")
	}
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = &NoopPublisher{}
	if err := p.Publish(context.Background(), TopicSearchCreated, SearchCreated{}); err != nil {
		t.Errorf("noop publish returned %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("noop close returned %v", err)
	}
}

func TestNATSPublisher_ImplementsPublisher(t *testing.T) {
	var _ Publisher = (*NATSPublisher)(nil)
}
