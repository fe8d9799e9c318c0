package wordpress

// Shape functions project raw decoded JSON objects onto the summary types.
// They are pure: no I/O, no mutation of the input. Every required key must
// be present with the expected JSON type or shaping fails with a
// *MalformedPayloadError naming the key; fields are never defaulted.

// ShapePost projects a raw post or page object onto a PostSummary.
// Required keys: id, date, link, title.rendered, content.rendered,
// featured_media. Values are copied verbatim; content keeps its HTML.
func ShapePost(raw map[string]any) (PostSummary, error) {
	id, err := requireInt(raw, "post", "id")
	if err != nil {
		return PostSummary{}, err
	}
	date, err := requireString(raw, "post", "date")
	if err != nil {
		return PostSummary{}, err
	}
	link, err := requireString(raw, "post", "link")
	if err != nil {
		return PostSummary{}, err
	}
	title, err := requireRendered(raw, "post", "title")
	if err != nil {
		return PostSummary{}, err
	}
	content, err := requireRendered(raw, "post", "content")
	if err != nil {
		return PostSummary{}, err
	}
	media, err := requireInt(raw, "post", "featured_media")
	if err != nil {
		return PostSummary{}, err
	}

	return PostSummary{
		ID:            id,
		Date:          date,
		Link:          link,
		Title:         title,
		Content:       content,
		FeaturedMedia: media,
	}, nil
}

// ShapeCategory projects a raw category object onto a CategorySummary.
// Required keys: id, name, count, link.
func ShapeCategory(raw map[string]any) (CategorySummary, error) {
	id, err := requireInt(raw, "category", "id")
	if err != nil {
		return CategorySummary{}, err
	}
	name, err := requireString(raw, "category", "name")
	if err != nil {
		return CategorySummary{}, err
	}
	count, err := requireInt(raw, "category", "count")
	if err != nil {
		return CategorySummary{}, err
	}
	link, err := requireString(raw, "category", "link")
	if err != nil {
		return CategorySummary{}, err
	}

	return CategorySummary{
		ID:    id,
		Name:  name,
		Count: count,
		Link:  link,
	}, nil
}

// ShapeSiteInfo projects the /wp-json root object onto a SiteInfo.
// Required keys: name, description, url.
func ShapeSiteInfo(raw map[string]any) (SiteInfo, error) {
	name, err := requireString(raw, "site info", "name")
	if err != nil {
		return SiteInfo{}, err
	}
	description, err := requireString(raw, "site info", "description")
	if err != nil {
		return SiteInfo{}, err
	}
	siteURL, err := requireString(raw, "site info", "url")
	if err != nil {
		return SiteInfo{}, err
	}

	return SiteInfo{
		Name:        name,
		Description: description,
		URL:         siteURL,
	}, nil
}

// requireString extracts a string value or fails naming the key
func requireString(raw map[string]any, entity, key string) (string, error) {
	v, ok := raw[key]
	if !ok {
		return "", &MalformedPayloadError{Entity: entity, Key: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", &MalformedPayloadError{Entity: entity, Key: key}
	}
	return s, nil
}

// requireInt extracts an integer value or fails naming the key.
// encoding/json decodes all numbers as float64.
func requireInt(raw map[string]any, entity, key string) (int, error) {
	v, ok := raw[key]
	if !ok {
		return 0, &MalformedPayloadError{Entity: entity, Key: key}
	}
	f, ok := v.(float64)
	if !ok {
		return 0, &MalformedPayloadError{Entity: entity, Key: key}
	}
	return int(f), nil
}

// requireRendered extracts key.rendered, the nested form WordPress uses
// for title and content.
func requireRendered(raw map[string]any, entity, key string) (string, error) {
	v, ok := raw[key]
	if !ok {
		return "", &MalformedPayloadError{Entity: entity, Key: key}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return "", &MalformedPayloadError{Entity: entity, Key: key}
	}
	rendered, ok := obj["rendered"]
	if !ok {
		return "", &MalformedPayloadError{Entity: entity, Key: key + ".rendered"}
	}
	s, ok := rendered.(string)
	if !ok {
		return "", &MalformedPayloadError{Entity: entity, Key: key + ".rendered"}
	}
	return s, nil
}
