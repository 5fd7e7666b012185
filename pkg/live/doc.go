// Package live streams metric snapshots to browsers over WebSocket.
//
// A Hub polls a metric.Source on a fixed interval and broadcasts the
// result as a JSON frame to every connected client. Clients that fall
// behind are dropped rather than allowed to stall the broadcast loop.
//
//	hub := live.NewHub(src, live.HubConfig{Interval: 5 * time.Second})
//	hub.Start()
//	defer hub.Stop()
//	mux.Handle("/live", hub.Handler())
package live
