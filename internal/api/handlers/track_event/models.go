package track_event

// TrackEventRequest HTTP request model
type TrackEventRequest struct {
	Event      string                 `json:"event"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// TrackEventResponse HTTP response model
type TrackEventResponse struct {
	Success bool   `json:"success"`
	Event   string `json:"event"`
}

// stringProperty возвращает строковое свойство события или пустую строку
func (r *TrackEventRequest) stringProperty(key string) string {
	v, _ := r.Properties[key].(string)
	return v
}
