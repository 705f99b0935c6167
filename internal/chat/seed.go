package chat

// DemoSeed is the built-in initial data collaborator: a handful of direct and
// group conversations with a short history each. It stands in for a fetch
// from a real messaging backend, which is out of scope for this service.
type DemoSeed struct{}

func NewDemoSeed() DemoSeed { return DemoSeed{} }

var demoUsers = []User{
	{ID: 101, Name: "Aria Chen", Avatar: "https://i.pravatar.cc/150?img=1", IsOnline: true},
	{ID: 102, Name: "Marcus Wright", Avatar: "https://i.pravatar.cc/150?img=2", IsOnline: false},
	{ID: 103, Name: "Nova Kaneda", Avatar: "https://i.pravatar.cc/150?img=3", IsOnline: true},
	{ID: 104, Name: "Lex Freeman", Avatar: "https://i.pravatar.cc/150?img=4", IsOnline: false},
}

func (DemoSeed) Conversations() []Conversation {
	return []Conversation{
		{
			ID: "conv-1", Name: "Aria Chen", Avatar: demoUsers[0].Avatar,
			Participants:    []User{demoUsers[0]},
			LastMessage:     "Did you see the new system update?",
			LastMessageTime: "10:30", UnreadCount: 2,
		},
		{
			ID: "conv-2", Name: "Marcus Wright", Avatar: demoUsers[1].Avatar,
			Participants:    []User{demoUsers[1]},
			LastMessage:     "Sending you the coordinates...",
			LastMessageTime: "Yesterday",
		},
		{
			ID: "conv-3", Name: "Nova Kaneda", Avatar: demoUsers[2].Avatar,
			Participants:    []User{demoUsers[2]},
			LastMessage:     "Signal is weak in this sector.",
			LastMessageTime: "Mon", Typing: true,
		},
		{
			ID: "conv-4", Name: "Lex Freeman", Avatar: demoUsers[3].Avatar,
			Participants:    []User{demoUsers[3]},
			LastMessage:     "Mission complete. Report filed.",
			LastMessageTime: "05/12", UnreadCount: 1,
		},
		{
			ID: "conv-5", IsGroup: true, Name: "Team Alpha",
			Participants:    []User{demoUsers[0], demoUsers[1], demoUsers[2]},
			LastMessage:     "Mission briefing at 15:00",
			LastMessageTime: "09:45", UnreadCount: 3,
		},
		{
			ID: "conv-6", IsGroup: true, Name: "Project Nexus",
			Participants:    []User{demoUsers[1], demoUsers[2], demoUsers[3]},
			LastMessage:     "Updates are rolling out now",
			LastMessageTime: "Yesterday", Typing: true,
		},
	}
}

func (DemoSeed) Messages() map[string][]Message {
	return map[string][]Message{
		"conv-1": {
			{ID: 1, SenderID: 101, Content: "Hey! How's it going today?", Timestamp: "10:15", Status: StatusRead, Type: TypeText},
			{ID: 2, SenderID: SentinelSenderID, Content: "Pretty good, thanks! You?", Timestamp: "10:18", Status: StatusRead, Type: TypeText},
			{ID: 3, SenderID: 101, Content: "Did you see the new system update?", Timestamp: "10:30", Status: StatusDelivered, Type: TypeText},
		},
		"conv-2": {
			{ID: 1, SenderID: 102, Content: "Hey, I need your help on a mission.", Timestamp: "Yesterday, 18:42", Status: StatusRead, Type: TypeText},
			{ID: 2, SenderID: SentinelSenderID, Content: "Sure, what's it about?", Timestamp: "Yesterday, 18:45", Status: StatusRead, Type: TypeText},
			{ID: 3, SenderID: 102, Content: "Sending you the coordinates...", Timestamp: "Yesterday, 18:50", Status: StatusDelivered, Type: TypeText},
		},
		"conv-3": {
			{ID: 1, SenderID: SentinelSenderID, Content: "Nova, do you copy?", Timestamp: "Mon, 09:30", Status: StatusRead, Type: TypeText},
			{ID: 2, SenderID: 103, Content: "Loud and clear. I'm in zone B.", Timestamp: "Mon, 09:32", Status: StatusRead, Type: TypeText},
			{ID: 3, SenderID: 103, Content: "Signal is weak in this sector.", Timestamp: "Mon, 09:35", Status: StatusDelivered, Type: TypeText},
		},
		"conv-4": {
			{ID: 1, SenderID: 104, Content: "Mission complete. Report filed.", Timestamp: "05/12, 22:15", Status: StatusDelivered, Type: TypeText},
		},
		"conv-5": {
			{ID: 1, SenderID: 101, Content: "Morning all, mission briefing at 15:00 today.", Timestamp: "09:30", Status: StatusRead, Type: TypeText},
			{ID: 2, SenderID: 102, Content: "I'll be there.", Timestamp: "09:35", Status: StatusRead, Type: TypeText},
			{ID: 3, SenderID: 103, Content: "Got it. Bringing the reports.", Timestamp: "09:40", Status: StatusRead, Type: TypeText},
			{ID: 4, SenderID: SentinelSenderID, Content: "I'll set up the meeting room.", Timestamp: "09:45", Status: StatusDelivered, Type: TypeText},
		},
		"conv-6": {
			{ID: 1, SenderID: 102, Content: "Security updates are ready to ship.", Timestamp: "Yesterday, 14:20", Status: StatusRead, Type: TypeText},
			{ID: 2, SenderID: 103, Content: "Finished testing on the dev environment.", Timestamp: "Yesterday, 14:30", Status: StatusRead, Type: TypeText},
			{ID: 3, SenderID: 104, Content: "Updates are rolling out now. Keeping watch.", Timestamp: "Yesterday, 15:45", Status: StatusDelivered, Type: TypeText},
		},
	}
}
