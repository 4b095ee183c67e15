package entity

import "time"

// Platform identifies one of the social networks fetched by the
// social-media store's fan-out.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
)

// AllPlatforms is the fixed fan-out set, in fetch order.
var AllPlatforms = []Platform{
	PlatformInstagram,
	PlatformTwitter,
	PlatformFacebook,
	PlatformTikTok,
	PlatformYouTube,
}

// SocialPlatformData is one platform's stats for one company.
type SocialPlatformData struct {
	Platform       Platform  `json:"platform"`
	Handle         string    `json:"handle"`
	Followers      *float64  `json:"followers"`
	Posts          *float64  `json:"posts"`
	EngagementRate *float64  `json:"engagement_rate"`
	SentimentScore *float64  `json:"sentiment_score"`
	FollowerSeries []float64 `json:"follower_series"`
	FetchedAt      time.Time `json:"fetched_at"`
}
