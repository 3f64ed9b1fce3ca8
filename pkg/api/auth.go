package api

// TokenRequest представляет запрос к OAuth token endpoint'у.
// Два grant type: "refresh_token" (обычный запуск) и "authorization_code"
// (первичная авторизация) — заполняется соответствующее поле.
type TokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Code         string `json:"code,omitempty"`
}

// TokenResponse представляет ответ OAuth token endpoint'а. Endpoint
// ротирует refresh token при каждом обмене — в ответе всегда свежая пара.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"` // unix время истечения access token
	ExpiresIn    int64  `json:"expires_in,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
}

// ErrorResponse представляет тело не-2xx ответа API
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError детализирует ошибку по конкретному полю запроса
type FieldError struct {
	Resource string `json:"resource"`
	Field    string `json:"field"`
	Code     string `json:"code"`
}
