package notes

import "time"

const homeContent = `<h1>Welcome</h1><p>Add sections and notes from the sidebar.</p>`

const linearRegressionContent = `<h1>Linear Regression</h1>
<p>Ordinary Least Squares minimizes \(\sum_i (y_i - \hat{y}_i)^2\).</p>
<p>Closed form: \(\hat{\beta} = (X^T X)^{-1} X^T y\).</p>`

// Default returns the bundled collection used when nothing else is available.
func Default(now time.Time) *Collection {
	ts := now.UnixMilli()
	return &Collection{
		SiteTitle: DefaultSiteTitle,
		Sections: []Section{
			{ID: "foundations", Title: "Foundations", Notes: []string{"linear-regression"}},
		},
		Notes: map[string]Note{
			HomeID: defaultHome(now),
			"linear-regression": {
				ID:        "linear-regression",
				Title:     "Linear Regression",
				Content:   linearRegressionContent,
				UpdatedAt: ts,
			},
		},
		SelectedNoteID: HomeID,
		Remote: RemoteConfig{
			Branch: DefaultBranch,
			Path:   DefaultPath,
		},
	}
}

func defaultHome(now time.Time) Note {
	return Note{
		ID:        HomeID,
		Title:     HomeLabel,
		Content:   homeContent,
		UpdatedAt: now.UnixMilli(),
	}
}
