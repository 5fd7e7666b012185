// Package publish exports a rendered site to a destination.
//
// A Site collects rendered pages and static assets as flat files. A
// Publisher writes those files somewhere: DirPublisher to a local
// directory for preview, S3Publisher to an S3 bucket for hosting.
//
//	site := publish.NewSite()
//	site.AddPage("index.html", landing.Page(deps))
//	site.AddDir(os.DirFS("static"), "static")
//
//	pub := publish.NewS3Publisher(client, "my-bucket", publish.WithPrefix("www/"))
//	err := pub.Publish(ctx, site.Files())
package publish
