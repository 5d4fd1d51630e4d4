package repo

type SourceKind string

const (
	SourceUpload SourceKind = "upload"
	SourceGitHub SourceKind = "github"
)

var AllSourceKinds = []SourceKind{
	SourceUpload,
	SourceGitHub,
}

func (k SourceKind) IsValid() bool {
	for _, v := range AllSourceKinds {
		if k == v {
			return true
		}
	}
	return false
}
