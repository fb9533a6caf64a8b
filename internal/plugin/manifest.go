package plugin

// manifestSchemaVersion はプラグインマニフェストのスキーマバージョン。
const manifestSchemaVersion = "v1"

// Manifest は /.well-known/ai-plugin.json で配信するプラグインマニフェスト。
type Manifest struct {
	SchemaVersion       string       `json:"schema_version"`
	NameForHuman        string       `json:"name_for_human"`
	NameForModel        string       `json:"name_for_model"`
	DescriptionForHuman string       `json:"description_for_human"`
	DescriptionForModel string       `json:"description_for_model"`
	Auth                ManifestAuth `json:"auth"`
	API                 ManifestAPI  `json:"api"`
	LogoURL             string       `json:"logo_url"`
	ContactEmail        string       `json:"contact_email"`
	LegalInfoURL        string       `json:"legal_info_url"`
}

// ManifestAuth はプラグインの認証方式。このプラグインは認証なし（"none"）。
type ManifestAuth struct {
	Type string `json:"type"`
}

// ManifestAPI はプラグインAPIの記述方式とOpenAPIドキュメントの場所。
type ManifestAPI struct {
	Type                string `json:"type"`
	URL                 string `json:"url"`
	IsUserAuthenticated bool   `json:"is_user_authenticated"`
}

// ManifestOptions はマニフェストのうち環境ごとに変わる値。
type ManifestOptions struct {
	// PublicURL は末尾スラッシュなしの外部公開ベースURL。
	PublicURL string
	// ContactEmail は連絡先メールアドレス。
	ContactEmail string
	// LegalInfoURL は利用規約のURL。
	LegalInfoURL string
}

// NewManifest はオプションからマニフェストを組み立てる。
func NewManifest(opts ManifestOptions) Manifest {
	return Manifest{
		SchemaVersion:       manifestSchemaVersion,
		NameForHuman:        "TODO Plugin",
		NameForModel:        "todo",
		DescriptionForHuman: "Manage your TODO list.",
		DescriptionForModel: "Plugin for listing the user's TODO items. Use it whenever the user asks about their TODOs.",
		Auth:                ManifestAuth{Type: "none"},
		API: ManifestAPI{
			Type:                "openapi",
			URL:                 opts.PublicURL + openAPIPath,
			IsUserAuthenticated: false,
		},
		LogoURL:      opts.PublicURL + logoPath,
		ContactEmail: opts.ContactEmail,
		LegalInfoURL: opts.LegalInfoURL,
	}
}
