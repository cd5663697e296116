// Package ws, WebSocket bağlantı yönetimi ve gerçek zamanlı event dağıtımını sağlar.
//
// Mimari:
// - Hub: Tüm bağlantıları yöneten merkezi yapı (Observer pattern)
// - Client: Her WebSocket bağlantısını temsil eder
// - Event: Client-server arası iletilen mesaj formatı
//
// Event akışı:
// 1. Kullanıcı bir perk oluşturur veya oy verir → HTTP POST → Service → DB
// 2. Service, Hub'ın BroadcastToAll metodunu çağırır
// 3. Hub, event'i tüm bağlı client'lara iletir
// 4. Her client'ın WritePump'ı event'i WebSocket'e yazar
package ws

// Event, WebSocket üzerinden iletilen bir mesajı temsil eder.
//
// Op: Event türü — "perk_create", "heartbeat" vb.
// Data: Event'e özgü payload.
// Seq: Her outbound event'e verilen artan sayı — client eksik event
// tespit etmek için takip eder.
type Event struct {
	Op   string `json:"op"`
	Data any    `json:"d,omitempty"`
	Seq  int64  `json:"seq,omitempty"`
}

// Client → Server operasyonları
const (
	OpHeartbeat = "heartbeat" // Client periyodik gönderir — "hâlâ bağlıyım" sinyali
)

// Server → Client operasyonları
const (
	OpHeartbeatAck = "heartbeat_ack" // Heartbeat'e yanıt

	OpPerkCreate       = "perk_create"       // Yeni perk eklendi — payload: perk
	OpPerkVote         = "perk_vote"         // Bir perk oy aldı — payload: güncel perk
	OpMembershipCreate = "membership_create" // Kataloğa yeni membership eklendi
)
