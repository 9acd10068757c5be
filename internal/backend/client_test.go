package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hopeworks/ngohub/internal/domain/models"
)

func serverClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return newTestClient(t, srv.URL+"/api")
}

func adminCtx(t *testing.T) context.Context {
	t.Helper()
	return WithToken(context.Background(), makeToken(t, time.Now().Add(time.Hour).Unix()))
}

func TestEnvelope_ErrorBodyMessage(t *testing.T) {
	c := serverClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	})

	res := c.ListStats(context.Background())
	if res.Success {
		t.Fatal("want failure envelope for HTTP 500")
	}
	if res.Error != "boom" {
		t.Errorf("error: got %q, want %q", res.Error, "boom")
	}
}

func TestEnvelope_SynthesizedStatusMessage(t *testing.T) {
	c := serverClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("<html>nope</html>"))
	})

	res := c.ListStats(context.Background())
	if res.Success {
		t.Fatal("want failure envelope for HTTP 404")
	}
	if want := "HTTP error! status: 404"; res.Error != want {
		t.Errorf("error: got %q, want %q", res.Error, want)
	}
}

func TestEnvelope_NetworkFailure(t *testing.T) {
	// Closed port: the transport rejects before any response.
	c := newTestClient(t, "http://127.0.0.1:1/api")
	res := c.ListStats(context.Background())
	if res.Success {
		t.Fatal("want failure envelope for transport error")
	}
	if res.Error == "" {
		t.Error("want non-empty error message")
	}
}

func TestEnvelope_NonArrayListBodyCoercedToEmpty(t *testing.T) {
	c := serverClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	})

	res := c.ListStats(context.Background())
	if !res.Success {
		t.Fatalf("want success, got error %q", res.Error)
	}
	if len(res.Data) != 0 {
		t.Errorf("want empty list, got %d items", len(res.Data))
	}
	if res.Data == nil {
		t.Error("want empty slice, not nil")
	}
}

func TestEnvelope_WrappedListUnwrapped(t *testing.T) {
	c := serverClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"stats":[{"label":"Villages","number":120}]}`))
	})

	res := c.ListStats(context.Background())
	if !res.Success || len(res.Data) != 1 {
		t.Fatalf("want one stat, got success=%v len=%d", res.Success, len(res.Data))
	}
	if res.Data[0].Label != "Villages" {
		t.Errorf("label: got %q", res.Data[0].Label)
	}
}

func TestListSortedByOrder_MissingOrderTreatedAsZero(t *testing.T) {
	c := serverClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"title":"five","order":5},{"title":"none"},{"title":"one","order":1}]`))
	})

	res := c.ListHeroSlides(context.Background(), HeroHome)
	if !res.Success {
		t.Fatalf("list failed: %s", res.Error)
	}
	got := []string{res.Data[0].Title, res.Data[1].Title, res.Data[2].Title}
	want := []string{"none", "one", "five"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sort order: got %v, want %v", got, want)
		}
	}
}

func TestListSort_StableOnTies(t *testing.T) {
	c := serverClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"title":"a","order":1},{"title":"b","order":1},{"title":"c","order":1}]`))
	})

	res := c.ListHeroSlides(context.Background(), HeroHome)
	if !res.Success {
		t.Fatalf("list failed: %s", res.Error)
	}
	got := []string{res.Data[0].Title, res.Data[1].Title, res.Data[2].Title}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ties must keep backend order: got %v", got)
		}
	}
}

func TestIDAlias_MongoIDPreferred(t *testing.T) {
	c := serverClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"abc123","id":"ignored","title":"slide"}]`))
	})

	res := c.ListHeroSlides(context.Background(), HeroHome)
	if !res.Success || len(res.Data) != 1 {
		t.Fatalf("want one slide")
	}
	if res.Data[0].ID != "abc123" {
		t.Errorf("id alias: got %q, want %q", res.Data[0].ID, "abc123")
	}
}

func TestComputedImageURL_DerivedOnFetch(t *testing.T) {
	c := serverClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"title":"s","imageUrl":"pic.jpg","useUpload":true}]`))
	})

	res := c.ListHeroSlides(context.Background(), HeroHome)
	if !res.Success || len(res.Data) != 1 {
		t.Fatalf("want one slide")
	}
	got := res.Data[0].ComputedImageURL
	if got == "" || got == "pic.jpg" {
		t.Errorf("computed image url not derived: %q", got)
	}
}

func TestAuthorizedCall_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	c := serverClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	})

	res := c.ListInquiries(adminCtx(t))
	if !res.Success {
		t.Fatalf("list failed: %s", res.Error)
	}
	if len(gotAuth) < 8 || gotAuth[:7] != "Bearer " {
		t.Errorf("authorization header: got %q", gotAuth)
	}
	if gotReqID == "" {
		t.Error("want X-Request-ID header")
	}
}

func TestAuthorizedCall_PreflightBlocksExpiredToken(t *testing.T) {
	called := false
	c := serverClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	ctx := WithToken(context.Background(), makeToken(t, time.Now().Add(-time.Minute).Unix()))
	res := c.ListInquiries(ctx)
	if res.Success {
		t.Fatal("want failure for expired token")
	}
	if !res.Unauthorized {
		t.Error("want Unauthorized set for pre-flight expiry")
	}
	if called {
		t.Error("expired token must never reach the network")
	}
}

func TestAuthorizedCall_401SetsUnauthorized(t *testing.T) {
	c := serverClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token revoked"}`))
	})

	res := c.ListInquiries(adminCtx(t))
	if res.Success || !res.Unauthorized {
		t.Fatalf("want unauthorized failure, got %+v", res)
	}
	if res.Error != "token revoked" {
		t.Errorf("error: got %q", res.Error)
	}
}

func TestMutation_UnwrapsWrappedAndBareShapes(t *testing.T) {
	t.Run("wrapped", func(t *testing.T) {
		c := serverClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"hero":{"_id":"h1","title":"wrapped"}}`))
		})
		res := c.Resource(HeroHome, "imageUrl", "hero").Create(adminCtx(t), map[string]string{"title": "wrapped"}, nil)
		if !res.Success || res.Data.Str("title") != "wrapped" || res.Data.ID() != "h1" {
			t.Fatalf("wrapped shape: got %+v", res)
		}
	})

	t.Run("bare", func(t *testing.T) {
		c := serverClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"_id":"h2","title":"bare"}`))
		})
		res := c.Resource(HeroHome, "imageUrl", "hero").Create(adminCtx(t), map[string]string{"title": "bare"}, nil)
		if !res.Success || res.Data.Str("title") != "bare" || res.Data.ID() != "h2" {
			t.Fatalf("bare shape: got %+v", res)
		}
	})
}

func TestResource_MultipartLeavesBoundaryToWriter(t *testing.T) {
	var contentType string
	c := serverClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if got := r.FormValue("title"); got != "uploaded" {
			t.Errorf("field title: got %q", got)
		}
		if _, hdr, err := r.FormFile("image"); err != nil || hdr.Filename != "a.png" {
			t.Errorf("file part: hdr=%v err=%v", hdr, err)
		}
		w.Write([]byte(`{"_id":"h3","title":"uploaded"}`))
	})

	file := &Upload{Field: "image", Filename: "a.png", ContentType: "image/png", Data: []byte{1, 2, 3}}
	res := c.Resource(HeroHome, "imageUrl", "hero").Create(adminCtx(t), map[string]string{"title": "uploaded"}, file)
	if !res.Success {
		t.Fatalf("create failed: %s", res.Error)
	}
	if contentType == "" || contentType == "multipart/form-data" {
		t.Errorf("content type must carry a boundary: %q", contentType)
	}
}

func TestVMItems_TypeFilterOnQuery(t *testing.T) {
	var gotQuery string
	c := serverClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"type":"mission","title":"m"}]`))
	})

	res := c.ListVMItems(context.Background(), models.VMTypeMission)
	if !res.Success || len(res.Data) != 1 {
		t.Fatalf("want one item")
	}
	if gotQuery != "type=mission" {
		t.Errorf("query: got %q", gotQuery)
	}
}
