package feed

// Static demo data backing the feed, notifications, and call-history views.
// These surfaces have no delivery pipeline behind them; the data is fixed per
// session, matching the conversation seed.

type Post struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	Avatar    string `json:"avatar"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Likes     int    `json:"likes"`
	Comments  int    `json:"comments"`
}

type NotificationType string

const (
	NotifLike    NotificationType = "like"
	NotifComment NotificationType = "comment"
	NotifFollow  NotificationType = "follow"
	NotifMessage NotificationType = "message"
	NotifSystem  NotificationType = "system"
)

type Notification struct {
	ID         int64            `json:"id"`
	Type       NotificationType `json:"type"`
	UserID     int64            `json:"user_id"`
	UserName   string           `json:"user_name"`
	Avatar     string           `json:"avatar"`
	Content    string           `json:"content"`
	Timestamp  string           `json:"timestamp"`
	Read       bool             `json:"read"`
	Actionable bool             `json:"actionable"`
}

type CallDirection string

const (
	CallIncoming CallDirection = "incoming"
	CallOutgoing CallDirection = "outgoing"
	CallMissed   CallDirection = "missed"
)

type CallEntry struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	UserName    string        `json:"user_name"`
	Avatar      string        `json:"avatar"`
	Timestamp   string        `json:"timestamp"`
	Duration    string        `json:"duration"`
	Type        CallDirection `json:"type"`
	IsAudioCall bool          `json:"is_audio_call"`
}

// Service hands out the demo data. Read-only.
type Service struct{}

func NewService() *Service { return &Service{} }

func (s *Service) Posts() []Post {
	return []Post{
		{ID: 3, UserID: 103, UserName: "Nova Kaneda", Avatar: "https://i.pravatar.cc/150?img=3",
			Content: "Signal coverage map for sector B is live. Expect dead zones near the old relay.",
			Timestamp: "1h ago", Likes: 12, Comments: 4},
		{ID: 2, UserID: 102, UserName: "Marcus Wright", Avatar: "https://i.pravatar.cc/150?img=2",
			Content: "Deployment went out clean. Monitoring dashboards all green.",
			Timestamp: "3h ago", Likes: 8, Comments: 2},
		{ID: 1, UserID: 101, UserName: "Aria Chen", Avatar: "https://i.pravatar.cc/150?img=1",
			Content: "First session on the new holographic interface. The quantum comms stack is something else.",
			Timestamp: "5h ago", Likes: 27, Comments: 9},
	}
}

func (s *Service) Notifications() []Notification {
	return []Notification{
		{ID: 1, Type: NotifLike, UserID: 101, UserName: "Aria Chen",
			Avatar: "https://i.pravatar.cc/150?img=1", Content: "liked your photo.",
			Timestamp: "30 mins ago"},
		{ID: 2, Type: NotifFollow, UserID: 102, UserName: "Marcus Wright",
			Avatar: "https://i.pravatar.cc/150?img=2", Content: "started following you.",
			Timestamp: "2 hours ago", Actionable: true},
		{ID: 3, Type: NotifComment, UserID: 103, UserName: "Nova Kaneda",
			Avatar: "https://i.pravatar.cc/150?img=3", Content: "commented: \"Great idea, we should try it!\"",
			Timestamp: "3 hours ago", Read: true},
		{ID: 4, Type: NotifSystem, Content: "System maintenance scheduled for tonight at 02:00.",
			Timestamp: "6 hours ago", Read: true},
	}
}

func (s *Service) CallHistory() []CallEntry {
	return []CallEntry{
		{ID: 1, UserID: 101, UserName: "Aria Chen", Avatar: "https://i.pravatar.cc/150?img=1",
			Timestamp: "Today, 10:42", Duration: "05:32", Type: CallIncoming, IsAudioCall: true},
		{ID: 2, UserID: 102, UserName: "Marcus Wright", Avatar: "https://i.pravatar.cc/150?img=2",
			Timestamp: "Yesterday, 18:30", Type: CallMissed, IsAudioCall: true},
		{ID: 3, UserID: 103, UserName: "Nova Kaneda", Avatar: "https://i.pravatar.cc/150?img=3",
			Timestamp: "Mon, 09:12", Duration: "12:08", Type: CallOutgoing, IsAudioCall: false},
	}
}
