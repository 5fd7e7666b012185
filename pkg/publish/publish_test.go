package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	apperrors "github.com/atrium-ui/atrium/internal/errors"
	"github.com/atrium-ui/atrium/pkg/ui"
)

type putCall struct {
	bucket       string
	key          string
	body         []byte
	contentType  string
	cacheControl string
}

type fakeS3 struct {
	calls   []putCall
	failKey string
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	call := putCall{bucket: *in.Bucket, key: *in.Key}
	if in.Body != nil {
		call.body, _ = io.ReadAll(in.Body)
	}
	if in.ContentType != nil {
		call.contentType = *in.ContentType
	}
	if in.CacheControl != nil {
		call.cacheControl = *in.CacheControl
	}
	if f.failKey != "" && call.key == f.failKey {
		return nil, errors.New("access denied")
	}
	f.calls = append(f.calls, call)
	return &s3.PutObjectOutput{}, nil
}

func TestSiteAddPageRendersDocument(t *testing.T) {
	site := NewSite()
	page := ui.Html(ui.Body(ui.H1(ui.Text("Atrium"))))
	if err := site.AddPage("index.html", page); err != nil {
		t.Fatalf("AddPage: %v", err)
	}

	files := site.Files()
	if len(files) != 1 {
		t.Fatalf("files = %d, want 1", len(files))
	}
	body := string(files[0].Body)
	if !strings.HasPrefix(body, "<!DOCTYPE html>") {
		t.Errorf("page should carry a doctype, got %q", body[:min(len(body), 40)])
	}
	if !strings.Contains(body, "<h1>Atrium</h1>") {
		t.Errorf("page body = %q", body)
	}
	if files[0].ContentType != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", files[0].ContentType)
	}
}

func TestSiteAddDirWalksAssets(t *testing.T) {
	fsys := fstest.MapFS{
		"app.css":      {Data: []byte("body{}")},
		"img/logo.svg": {Data: []byte("<svg/>")},
	}

	site := NewSite()
	if err := site.AddDir(fsys, "static"); err != nil {
		t.Fatalf("AddDir: %v", err)
	}

	files := site.Files()
	if len(files) != 2 {
		t.Fatalf("files = %d, want 2", len(files))
	}
	if files[0].Key != "static/app.css" || files[1].Key != "static/img/logo.svg" {
		t.Errorf("keys = %q, %q", files[0].Key, files[1].Key)
	}
	if !strings.HasPrefix(files[0].ContentType, "text/css") {
		t.Errorf("css content type = %q", files[0].ContentType)
	}
}

func TestSiteFilesSortedAndDeduped(t *testing.T) {
	site := NewSite()
	site.AddFile("b.txt", []byte("old"))
	site.AddFile("a.txt", []byte("a"))
	site.AddFile("b.txt", []byte("new"))

	files := site.Files()
	if len(files) != 2 {
		t.Fatalf("files = %d, want 2", len(files))
	}
	if files[0].Key != "a.txt" || files[1].Key != "b.txt" {
		t.Errorf("keys = %q, %q", files[0].Key, files[1].Key)
	}
	if string(files[1].Body) != "new" {
		t.Error("later AddFile should replace the earlier one")
	}
}

func TestS3PublisherUploadsAllFiles(t *testing.T) {
	fake := &fakeS3{}
	pub := NewS3Publisher(fake, "my-bucket",
		WithPrefix("www/"),
		WithCacheControl("public, max-age=300"),
	)

	files := []File{
		{Key: "index.html", Body: []byte("<html/>"), ContentType: "text/html; charset=utf-8"},
		{Key: "static/app.css", Body: []byte("body{}")},
	}
	if err := pub.Publish(context.Background(), files); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(fake.calls) != 2 {
		t.Fatalf("uploads = %d, want 2", len(fake.calls))
	}
	first := fake.calls[0]
	if first.bucket != "my-bucket" || first.key != "www/index.html" {
		t.Errorf("first upload = %+v", first)
	}
	if first.cacheControl != "public, max-age=300" {
		t.Errorf("cache control = %q", first.cacheControl)
	}
	if !strings.HasPrefix(fake.calls[1].contentType, "text/css") {
		t.Errorf("derived content type = %q", fake.calls[1].contentType)
	}
}

func TestS3PublisherStopsAtFirstFailure(t *testing.T) {
	fake := &fakeS3{failKey: "b.txt"}
	pub := NewS3Publisher(fake, "my-bucket")

	err := pub.Publish(context.Background(), []File{
		{Key: "a.txt", Body: []byte("a")},
		{Key: "b.txt", Body: []byte("b")},
		{Key: "c.txt", Body: []byte("c")},
	})
	if err == nil {
		t.Fatal("Publish should fail when an upload fails")
	}

	var aerr *apperrors.AtriumError
	if !errors.As(err, &aerr) || aerr.Code != "A040" {
		t.Fatalf("err = %v, want code A040", err)
	}
	if !strings.Contains(aerr.Detail, "b.txt") {
		t.Errorf("detail should name the failed key: %q", aerr.Detail)
	}
	if len(fake.calls) != 1 {
		t.Errorf("uploads before failure = %d, want 1", len(fake.calls))
	}
}

func TestS3PublisherRejectsEmptyFileSet(t *testing.T) {
	pub := NewS3Publisher(&fakeS3{}, "my-bucket")

	err := pub.Publish(context.Background(), nil)
	var aerr *apperrors.AtriumError
	if !errors.As(err, &aerr) || aerr.Code != "A041" {
		t.Fatalf("err = %v, want code A041", err)
	}
}

func TestDirPublisherWritesTree(t *testing.T) {
	root := t.TempDir()
	pub := NewDirPublisher(root, nil)

	err := pub.Publish(context.Background(), []File{
		{Key: "index.html", Body: []byte("<html/>")},
		{Key: "static/app.css", Body: []byte("body{}")},
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(root, "static", "app.css"))
	if err != nil {
		t.Fatalf("read published asset: %v", err)
	}
	if string(got) != "body{}" {
		t.Errorf("asset body = %q", got)
	}
}

func TestDirPublisherHonorsContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pub := NewDirPublisher(t.TempDir(), nil)
	err := pub.Publish(ctx, []File{{Key: "a.txt", Body: []byte("a")}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
