package core

import (
	"testing"

	"github.com/rs/zerolog"
)

func benchmarkBroadcast(b *testing.B, recipients int) {
	logger := zerolog.New(nil)
	hub := NewHub(1024, &logger)
	hub.AddRoom("bench")

	subs := make([]*Subscriber, 0, recipients)
	for i := 0; i < recipients; i++ {
		sub, _, err := hub.Subscribe("bench")
		if err != nil {
			b.Fatalf("subscribe: %v", err)
		}
		subs = append(subs, sub)
	}

	// Drain all but the first recipient to avoid queue overflow drops.
	target := subs[0]
	for _, sub := range subs[1:] {
		go func(s *Subscriber) {
			for range s.Events() {
			}
		}(sub)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := hub.Publish("bench", "u1", "bench", "payload"); err != nil {
			b.Fatalf("publish: %v", err)
		}
		<-target.Events()
	}
}

func BenchmarkBroadcast_10(b *testing.B)  { benchmarkBroadcast(b, 10) }
func BenchmarkBroadcast_100(b *testing.B) { benchmarkBroadcast(b, 100) }
func BenchmarkBroadcast_500(b *testing.B) { benchmarkBroadcast(b, 500) }
