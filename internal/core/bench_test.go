package core

import (
	"strconv"
	"testing"

	"github.com/rs/zerolog"
)

func benchmarkRoomBroadcast(b *testing.B, recipients int) {
	logger := zerolog.Nop()
	r := newRoom("bench")

	target := memberSession("target")
	r.join(target)
	for i := 0; i < recipients-1; i++ {
		s := memberSession("r" + strconv.Itoa(i))
		r.join(s)
		// Drain to avoid backpressure on everyone but the target.
		go func(cl *Session) {
			for range cl.Events {
			}
		}(s)
	}

	ev := &Event{Kind: EventMessage, Identity: "sender", Content: "payload"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r.Broadcast(ev, &logger)
		<-target.Events
	}
}

func BenchmarkRoomBroadcast_10(b *testing.B)  { benchmarkRoomBroadcast(b, 10) }
func BenchmarkRoomBroadcast_100(b *testing.B) { benchmarkRoomBroadcast(b, 100) }
func BenchmarkRoomBroadcast_500(b *testing.B) { benchmarkRoomBroadcast(b, 500) }
