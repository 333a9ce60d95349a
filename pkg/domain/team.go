package domain

// TeamMemberStatus tells whether a member is currently on the team.
type TeamMemberStatus string

const (
	MemberActive   TeamMemberStatus = "active"
	MemberInactive TeamMemberStatus = "inactive"
)

// TeamMemberStatuses lists every team member status.
var TeamMemberStatuses = []TeamMemberStatus{MemberActive, MemberInactive}

var teamMemberStatusSet = setOf(TeamMemberStatuses)

// Valid reports whether s is a known team member status.
func (s TeamMemberStatus) Valid() bool { return teamMemberStatusSet[s] }

func (s TeamMemberStatus) MarshalText() ([]byte, error) { return []byte(wireName(string(s))), nil }

func (s *TeamMemberStatus) UnmarshalText(b []byte) error {
	*s = TeamMemberStatus(localName(string(b)))
	return nil
}

// TeamMember is a person on the studio roster.
type TeamMember struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Role        string           `json:"role"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone,omitempty"`
	Avatar      string           `json:"avatar_url,omitempty"`
	Bio         string           `json:"bio,omitempty"`
	JoinDate    string           `json:"join_date,omitempty"`
	Status      TeamMemberStatus `json:"status"`
	Skills      Skills           `json:"skills,omitempty"`
	SocialLinks SocialLinks      `json:"social_links,omitempty"`
}
