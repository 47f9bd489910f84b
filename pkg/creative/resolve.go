package creative

// Overrides carries caller-supplied values that take precedence over
// anything derivable from the record.
type Overrides struct {
	VideoURL string         `json:"video_url,omitempty"`
	ImageURL string         `json:"image_url,omitempty"`
	Data     map[string]any `json:"data,omitempty"` // canonical field name -> value
}

// dataString returns the override for a canonical field, if present
// and a string.
func (o Overrides) dataString(field string) string {
	if o.Data == nil {
		return ""
	}
	s, _ := o.Data[field].(string)
	return s
}

// Context carries render-time parameters that influence resolution.
type Context struct {
	// Origin resolves root-relative asset paths.
	Origin string
	// PreferVideoCover ranks the derived video cover ahead of the
	// marketing images when choosing the media URL.
	PreferVideoCover bool
}

// Resolved is the canonical per-render projection of a record: exactly
// one value (or absence) per display field. It is computed once per
// render and never mutated afterward.
type Resolved struct {
	Title            string
	LongHeadline     string
	Description      string
	BusinessName     string
	CTAText          string
	LogoURL          string
	MediaURL         string
	SquareMediaURL   string
	VideoPlaybackURL string
}

// Resolve maps a raw record plus overrides into the canonical
// projection. It never fails: every field degrades to empty/absent and
// malformed URLs are swallowed locally.
func Resolve(rec *Record, ctx Context, ov Overrides) Resolved {
	if rec == nil {
		rec = &Record{}
	}

	r := Resolved{
		Title:        resolveTitle(rec, ov),
		LongHeadline: resolveLongHeadline(rec, ov),
		Description:  resolveDescription(rec, ov),
		BusinessName: resolveBusinessName(rec, ov),
		CTAText:      resolveCTA(rec, ov),
		LogoURL:      NormalizeURL(resolveLogo(rec, ov), ctx.Origin),
	}

	cover := resolveVideoCover(rec, ctx, ov)
	primary, square := marketingImages(rec, ctx)

	r.MediaURL = resolveMedia(ov.ImageURL, primary, square, cover, ctx)
	r.SquareMediaURL = resolveSquareMedia(ov.ImageURL, primary, square, cover, ctx)
	r.VideoPlaybackURL = resolvePlayback(rec, ctx, ov)
	return r
}

// Text precedence: first non-empty wins, fixed order per format.
func resolveTitle(rec *Record, ov Overrides) string {
	if s := ov.dataString("title"); s != "" {
		return s
	}
	candidates := []string{}
	if rec.DisplayAd != nil {
		candidates = append(candidates, firstText(rec.DisplayAd.Headlines))
	}
	if rec.SearchAd != nil {
		candidates = append(candidates, firstText(rec.SearchAd.Headlines))
	}
	candidates = append(candidates, longHeadlineOf(rec))
	if rec.VideoAd != nil {
		candidates = append(candidates, firstText(rec.VideoAd.Headlines))
	}
	if rec.LegacyVideoAd != nil && rec.LegacyVideoAd.Headline != nil {
		candidates = append(candidates, rec.LegacyVideoAd.Headline.Text)
	}
	candidates = append(candidates, rec.Name)
	return firstNonEmpty(candidates)
}

func longHeadlineOf(rec *Record) string {
	if rec.DisplayAd != nil && rec.DisplayAd.LongHeadline != nil && rec.DisplayAd.LongHeadline.Text != "" {
		return rec.DisplayAd.LongHeadline.Text
	}
	if rec.VideoAd != nil {
		return firstText(rec.VideoAd.LongHeadlines)
	}
	return ""
}

func resolveLongHeadline(rec *Record, ov Overrides) string {
	if s := ov.dataString("long_headline"); s != "" {
		return s
	}
	return longHeadlineOf(rec)
}

func resolveDescription(rec *Record, ov Overrides) string {
	if s := ov.dataString("description"); s != "" {
		return s
	}
	candidates := []string{}
	if rec.DisplayAd != nil {
		candidates = append(candidates, firstText(rec.DisplayAd.Descriptions))
	}
	if rec.SearchAd != nil {
		candidates = append(candidates, firstText(rec.SearchAd.Descriptions))
	}
	if rec.VideoAd != nil {
		candidates = append(candidates, firstText(rec.VideoAd.Descriptions))
	}
	return firstNonEmpty(candidates)
}

// Business name: explicit field, else hostname from the first
// well-formed final URL, else from the display URL, else literal "Ad".
func resolveBusinessName(rec *Record, ov Overrides) string {
	if s := ov.dataString("business_name"); s != "" {
		return s
	}
	if rec.DisplayAd != nil && rec.DisplayAd.BusinessName != "" {
		return rec.DisplayAd.BusinessName
	}
	if rec.VideoAd != nil && rec.VideoAd.BusinessName != "" {
		return rec.VideoAd.BusinessName
	}
	candidates := append([]string{}, rec.FinalURLs...)
	candidates = append(candidates, rec.DisplayURL)
	if host := HostnameFromURL(candidates...); host != "" {
		return host
	}
	return "Ad"
}

func resolveCTA(rec *Record, ov Overrides) string {
	if s := ov.dataString("cta_text"); s != "" {
		return s
	}
	if rec.DisplayAd != nil && rec.DisplayAd.CallToActionText != "" {
		return rec.DisplayAd.CallToActionText
	}
	if rec.VideoAd != nil {
		return firstText(rec.VideoAd.CallToActions)
	}
	return ""
}

func resolveLogo(rec *Record, ov Overrides) string {
	if s := ov.dataString("logo_url"); s != "" {
		return s
	}
	if rec.DisplayAd != nil {
		if img, ok := firstImage(rec.DisplayAd.LogoImages); ok {
			return img.Poster()
		}
		if img, ok := firstImage(rec.DisplayAd.SquareLogoImages); ok {
			return img.Poster()
		}
	}
	if rec.VideoAd != nil {
		if img, ok := firstImage(rec.VideoAd.LogoImages); ok {
			return img.Poster()
		}
	}
	return ""
}

func marketingImages(rec *Record, ctx Context) (primary, square string) {
	if rec.DisplayAd == nil {
		return "", ""
	}
	if img, ok := firstImage(rec.DisplayAd.MarketingImages); ok {
		primary = NormalizeURL(img.Poster(), ctx.Origin)
	}
	if img, ok := firstImage(rec.DisplayAd.SquareMarketingImages); ok {
		square = NormalizeURL(img.Poster(), ctx.Origin)
	}
	return primary, square
}

// Media URL precedence: override > primary > square > video cover.
// Video-cover-preferred variants rank the cover ahead of both images.
func resolveMedia(override, primary, square, cover string, ctx Context) string {
	override = NormalizeURL(override, ctx.Origin)
	order := []string{override, primary, square, cover}
	if ctx.PreferVideoCover {
		order = []string{override, cover, primary, square}
	}
	return firstNonEmpty(order)
}

// Square surfaces prefer the square source, then fall back the same way.
func resolveSquareMedia(override, primary, square, cover string, ctx Context) string {
	override = NormalizeURL(override, ctx.Origin)
	order := []string{override, square, primary, cover}
	if ctx.PreferVideoCover {
		order = []string{override, cover, square, primary}
	}
	return firstNonEmpty(order)
}

// Video cover derivation, attempted in order until one succeeds:
// caller override, companion-banner poster metadata, video-asset poster
// metadata, the video's attached generic image, the platform-native
// thumbnail field, and finally a thumbnail synthesized from a
// recognized video identifier.
func resolveVideoCover(rec *Record, ctx Context, ov Overrides) string {
	if s := NormalizeURL(ov.dataString("video_cover_url"), ctx.Origin); s != "" {
		return s
	}

	video, hasVideo := primaryVideo(rec)

	if rec.VideoAd != nil {
		if banner, ok := firstImage(rec.VideoAd.CompanionBanners); ok {
			if s := NormalizeURL(banner.Poster(), ctx.Origin); s != "" {
				return s
			}
		}
	}
	if hasVideo {
		if s := NormalizeURL(video.Poster(), ctx.Origin); s != "" {
			return s
		}
		if video.Image != nil {
			if s := NormalizeURL(video.Image.Poster(), ctx.Origin); s != "" {
				return s
			}
		}
		if s := NormalizeURL(video.Thumbnail, ctx.Origin); s != "" {
			return s
		}
		if id := videoIdentifier(video); id != "" {
			return YouTubeThumbnailURL(id)
		}
	}
	return ""
}

func resolvePlayback(rec *Record, ctx Context, ov Overrides) string {
	if s := PlaybackURL(ov.VideoURL, ctx.Origin); s != "" {
		return s
	}
	if video, ok := primaryVideo(rec); ok {
		if id := videoIdentifier(video); id != "" {
			return YouTubeEmbedURL(id)
		}
		if s := PlaybackURL(video.URL, ctx.Origin); s != "" {
			return s
		}
		if s := PlaybackURL(video.Asset, ctx.Origin); s != "" {
			return s
		}
	}
	return ""
}

func primaryVideo(rec *Record) (VideoAsset, bool) {
	if rec.VideoAd != nil {
		if v, ok := firstVideo(rec.VideoAd.Videos); ok {
			return v, true
		}
	}
	if rec.LegacyVideoAd != nil && rec.LegacyVideoAd.Video != nil {
		return *rec.LegacyVideoAd.Video, true
	}
	if rec.DisplayAd != nil {
		if v, ok := firstVideo(rec.DisplayAd.Videos); ok {
			return v, true
		}
	}
	return VideoAsset{}, false
}

func videoIdentifier(v VideoAsset) string {
	if IsVideoID(v.ID) {
		return v.ID
	}
	if id := YouTubeVideoID(v.URL); id != "" {
		return id
	}
	if id := YouTubeVideoID(v.Asset); id != "" {
		return id
	}
	return ""
}

func firstNonEmpty(candidates []string) string {
	for _, s := range candidates {
		if s != "" {
			return s
		}
	}
	return ""
}
