package catalog

import "github.com/kdeldycke/extra-platforms-sub001/pkg/trait"

// CI identifiers used by the convenience predicates.
const (
	CIGitHub = "github_ci"
	CIGitLab = "gitlab_ci"
)

func ciSystems() *trait.Builder {
	const c = trait.CategoryCI
	return trait.NewBuilder(c).
		Unknown("Unknown CI", "❓").
		Canonical("All CI systems", "♺").
		Add(
			trait.New(c, "azure_pipelines", "Azure Pipelines", "═", "https://azure.microsoft.com/products/devops/pipelines", envSet("TF_BUILD")),
			trait.New(c, "bamboo", "Bamboo", "×", "https://www.atlassian.com/software/bamboo", envSet("bamboo_buildKey")),
			trait.New(c, "buildkite", "Buildkite", "🪁", "https://buildkite.com", envSet("BUILDKITE")),
			trait.New(c, "circle_ci", "Circle CI", "⪾", "https://circleci.com", envSet("CIRCLECI")),
			trait.New(c, "cirrus_ci", "Cirrus CI", "≋", "https://cirrus-ci.org", envSet("CIRRUS_CI")),
			trait.New(c, "codebuild", "CodeBuild", "ᚙ", "https://aws.amazon.com/codebuild", envSet("CODEBUILD_BUILD_ID")),
			trait.New(c, CIGitHub, "GitHub Actions runner", "🐙", "https://github.com/features/actions", envSet("GITHUB_ACTIONS")),
			trait.New(c, CIGitLab, "GitLab CI", "🦊", "https://docs.gitlab.com/ci", envSet("GITLAB_CI")),
			trait.New(c, "heroku_ci", "Heroku CI", "⥁", "https://www.heroku.com/continuous-integration", envSet("HEROKU_TEST_RUN_ID")),
			trait.New(c, "teamcity", "TeamCity", "⚙", "https://www.jetbrains.com/teamcity", envSet("TEAMCITY_VERSION")),
			trait.New(c, "travis_ci", "Travis CI", "ⓣ", "https://travis-ci.com", envSet("TRAVIS")),
		)
}
