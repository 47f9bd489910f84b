// Package creative models raw ad-creative records and resolves them
// into the canonical projection consumed by the preview engine.
//
// A Record arrives fresh from the campaign-data service on every render
// request. Its fields are heavily optional and multiply aliased: the
// same poster image may appear under several field names depending on
// which upstream export produced the record. Resolve collapses all of
// that into one value (or absence) per canonical display field.
package creative

// AssetLink identifies an uploaded asset by URL, resource name, or both.
type AssetLink struct {
	URL   string `json:"url,omitempty"`
	Asset string `json:"asset,omitempty"`
}

// TextAsset is a single text entry (headline, description, CTA).
type TextAsset struct {
	Text string `json:"text"`
}

// ImageAsset is an image entry. Besides the asset link it may carry
// poster metadata under one of several legacy field names; Poster
// resolves them first-match-wins in declaration order.
type ImageAsset struct {
	AssetLink
	ImageURL     string `json:"image_url,omitempty"`
	PreviewURL   string `json:"preview_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// Poster returns the first non-empty poster metadata field, or the
// asset URL itself when no alias is set.
func (a ImageAsset) Poster() string {
	for _, s := range []string{a.ImageURL, a.PreviewURL, a.ThumbnailURL, a.URL} {
		if s != "" {
			return s
		}
	}
	return ""
}

// VideoAsset is a video entry. ID is the provider video identifier when
// known; Image is a generic image attached to the video; Thumbnail is a
// platform-native thumbnail field.
type VideoAsset struct {
	AssetLink
	ID           string      `json:"id,omitempty"`
	Image        *ImageAsset `json:"image,omitempty"`
	Thumbnail    string      `json:"thumbnail,omitempty"`
	ImageURL     string      `json:"image_url,omitempty"`
	PreviewURL   string      `json:"preview_url,omitempty"`
	ThumbnailURL string      `json:"thumbnail_url,omitempty"`
}

// Poster returns the first non-empty poster metadata field on the video
// asset itself, not counting the attached generic image.
func (v VideoAsset) Poster() string {
	for _, s := range []string{v.ImageURL, v.PreviewURL, v.ThumbnailURL} {
		if s != "" {
			return s
		}
	}
	return ""
}

// DisplayAd is the responsive display format payload.
type DisplayAd struct {
	Headlines             []TextAsset  `json:"headlines,omitempty"`
	LongHeadline          *TextAsset   `json:"long_headline,omitempty"`
	Descriptions          []TextAsset  `json:"descriptions,omitempty"`
	BusinessName          string       `json:"business_name,omitempty"`
	CallToActionText      string       `json:"call_to_action_text,omitempty"`
	MarketingImages       []ImageAsset `json:"marketing_images,omitempty"`
	SquareMarketingImages []ImageAsset `json:"square_marketing_images,omitempty"`
	LogoImages            []ImageAsset `json:"logo_images,omitempty"`
	SquareLogoImages      []ImageAsset `json:"square_logo_images,omitempty"`
	Videos                []VideoAsset `json:"youtube_videos,omitempty"`
}

// SearchAd is the responsive search format payload.
type SearchAd struct {
	Headlines    []TextAsset `json:"headlines,omitempty"`
	Descriptions []TextAsset `json:"descriptions,omitempty"`
	Path1        string      `json:"path1,omitempty"`
	Path2        string      `json:"path2,omitempty"`
}

// VideoAd is the responsive video format payload.
type VideoAd struct {
	Headlines        []TextAsset  `json:"headlines,omitempty"`
	LongHeadlines    []TextAsset  `json:"long_headlines,omitempty"`
	Descriptions     []TextAsset  `json:"descriptions,omitempty"`
	CallToActions    []TextAsset  `json:"call_to_actions,omitempty"`
	Videos           []VideoAsset `json:"videos,omitempty"`
	CompanionBanners []ImageAsset `json:"companion_banners,omitempty"`
	LogoImages       []ImageAsset `json:"logo_images,omitempty"`
	BusinessName     string       `json:"business_name,omitempty"`
}

// LegacyVideoAd is the deprecated single-video format payload, still
// present on older records.
type LegacyVideoAd struct {
	Headline *TextAsset  `json:"headline,omitempty"`
	Video    *VideoAsset `json:"video,omitempty"`
}

// Record is a raw creative as delivered by the campaign-data service.
// At most one format payload is expected, but nothing is guaranteed;
// Resolve tolerates any combination including none.
type Record struct {
	Name          string         `json:"name,omitempty"`
	FinalURLs     []string       `json:"final_urls,omitempty"`
	DisplayURL    string         `json:"display_url,omitempty"`
	DisplayAd     *DisplayAd     `json:"responsive_display_ad,omitempty"`
	SearchAd      *SearchAd      `json:"responsive_search_ad,omitempty"`
	VideoAd       *VideoAd       `json:"video_responsive_ad,omitempty"`
	LegacyVideoAd *LegacyVideoAd `json:"video_ad,omitempty"`
}

// HasDisplay reports whether a display payload is present.
func (r *Record) HasDisplay() bool { return r != nil && r.DisplayAd != nil }

// HasSearch reports whether a search payload is present.
func (r *Record) HasSearch() bool { return r != nil && r.SearchAd != nil }

// HasVideo reports whether any video payload is present, legacy included.
func (r *Record) HasVideo() bool {
	return r != nil && (r.VideoAd != nil || r.LegacyVideoAd != nil)
}

// HasAnyFormat reports whether at least one format payload is present.
func (r *Record) HasAnyFormat() bool {
	return r.HasDisplay() || r.HasSearch() || r.HasVideo()
}

// firstText returns the text of the first non-empty entry.
func firstText(assets []TextAsset) string {
	for _, a := range assets {
		if a.Text != "" {
			return a.Text
		}
	}
	return ""
}

// firstImage returns the first image with any usable source.
func firstImage(assets []ImageAsset) (ImageAsset, bool) {
	for _, a := range assets {
		if a.Poster() != "" {
			return a, true
		}
	}
	return ImageAsset{}, false
}

// firstVideo returns the first video with any usable reference.
func firstVideo(assets []VideoAsset) (VideoAsset, bool) {
	for _, v := range assets {
		if v.URL != "" || v.Asset != "" || v.ID != "" || v.Poster() != "" || v.Thumbnail != "" || v.Image != nil {
			return v, true
		}
	}
	return VideoAsset{}, false
}
