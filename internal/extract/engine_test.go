package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitsniff/internal/core/domain"
)

func allEnabled() Config {
	return Config{Addresses: true, Emails: true, Telephones: true, Tokens: true, URLs: true}
}

func TestNewEngine(t *testing.T) {
	t.Run("export contains exactly the enabled categories", func(t *testing.T) {
		e := NewEngine(Config{Emails: true, URLs: true})
		e.Ingest("reach me at someone@example.com or https://example.com/home")

		r := e.Report()

		assert.Equal(t, []string{"emails", "urls"}, r.Categories())
	})

	t.Run("enabled category with no matches is present and empty", func(t *testing.T) {
		e := NewEngine(Config{Addresses: true})
		e.Ingest("nothing of interest")

		r := e.Report()

		require.Equal(t, []string{"addresses"}, r.Categories())
		assert.Empty(t, r.Matches("addresses"))
	})

	t.Run("instances own their collections", func(t *testing.T) {
		first := NewEngine(Config{Emails: true})
		first.Ingest("one@example.com")

		second := NewEngine(Config{Emails: true})

		assert.Len(t, first.Matches(domain.CategoryEmails), 1)
		assert.Empty(t, second.Matches(domain.CategoryEmails))
	})
}

func TestIngest_Ordering(t *testing.T) {
	t.Run("matches accumulate across ingests in discovery order", func(t *testing.T) {
		e := NewEngine(Config{Emails: true})
		e.Ingest("first@example.com and second@example.com")
		e.Ingest("third@example.com")

		assert.Equal(t, []string{
			"first@example.com",
			"second@example.com",
			"third@example.com",
		}, e.Matches(domain.CategoryEmails))
	})

	t.Run("sequential ingest equals concatenated ingest when no match spans the boundary", func(t *testing.T) {
		a := "alpha@example.com some filler\n"
		b := "beta@example.com more filler\n"

		split := NewEngine(Config{Emails: true})
		split.Ingest(a)
		split.Ingest(b)

		joined := NewEngine(Config{Emails: true})
		joined.Ingest(a + b)

		assert.Equal(t, joined.Matches(domain.CategoryEmails), split.Matches(domain.CategoryEmails))
	})
}

func TestEmailMatcher(t *testing.T) {
	t.Run("full symbol set local part matches in full", func(t *testing.T) {
		e := NewEngine(Config{Emails: true})
		e.Ingest("contact: user.name+tag@sub.example.com please")

		assert.Equal(t, []string{"user.name+tag@sub.example.com"}, e.Matches(domain.CategoryEmails))
	})

	t.Run("malformed domains do not match", func(t *testing.T) {
		e := NewEngine(Config{Emails: true})
		e.Ingest("user@.com")
		e.Ingest("user@com")

		assert.Empty(t, e.Matches(domain.CategoryEmails))
	})
}

func TestTokenMatcher(t *testing.T) {
	t.Run("keyword identifier captures assignment and rest of line", func(t *testing.T) {
		e := NewEngine(Config{Tokens: true})
		e.Ingest(`my_secret_key = "abc123"`)

		require.Len(t, e.Matches(domain.CategoryTokens), 1)
		assert.Equal(t, `my_secret_key = "abc123"`, e.Matches(domain.CategoryTokens)[0])
	})

	t.Run("keyword in the value alone does not match", func(t *testing.T) {
		e := NewEngine(Config{Tokens: true})
		e.Ingest(`description = "no secret here"`)

		assert.Empty(t, e.Matches(domain.CategoryTokens))
	})

	t.Run("colon assignments and quoted identifiers match", func(t *testing.T) {
		e := NewEngine(Config{Tokens: true})
		e.Ingest("\"api-token\": 12345\npassword: hunter2")

		assert.Equal(t, []string{
			`"api-token": 12345`,
			"password: hunter2",
		}, e.Matches(domain.CategoryTokens))
	})

	t.Run("keyword match is case-insensitive", func(t *testing.T) {
		e := NewEngine(Config{Tokens: true})
		e.Ingest("AWS_SECRET_ACCESS_KEY=wJalrXUtnFEMI")

		require.Len(t, e.Matches(domain.CategoryTokens), 1)
	})
}

func TestTelephoneMatcher(t *testing.T) {
	t.Run("grouped numbers match", func(t *testing.T) {
		e := NewEngine(Config{Telephones: true})
		e.Ingest("+1 555-123-4567")
		e.Ingest("(555) 123-4567")

		assert.Equal(t, []string{
			"+1 555-123-4567",
			"(555) 123-4567",
		}, e.Matches(domain.CategoryTelephones))
	})

	t.Run("five bare digits do not match", func(t *testing.T) {
		e := NewEngine(Config{Telephones: true})
		e.Ingest("12345")

		assert.Empty(t, e.Matches(domain.CategoryTelephones))
	})
}

func TestAddressMatcher(t *testing.T) {
	e := NewEngine(Config{Addresses: true})
	e.Ingest("spedire a via Roma 10, 20121 Milano MI entro oggi")

	require.Len(t, e.Matches(domain.CategoryAddresses), 1)
	assert.Contains(t, e.Matches(domain.CategoryAddresses)[0], "via Roma 10, 20121 Milano MI")
}

func TestURLMatcher(t *testing.T) {
	t.Run("hostnames, dotted quads, ports and paths", func(t *testing.T) {
		e := NewEngine(Config{URLs: true})
		e.Ingest("see https://example.com/docs?page=2 and http://192.168.0.1:8080/admin")

		assert.Equal(t, []string{
			"https://example.com/docs?page=2",
			"http://192.168.0.1:8080/admin",
		}, e.Matches(domain.CategoryURLs))
	})

	t.Run("scheme is any alphabetic token", func(t *testing.T) {
		e := NewEngine(Config{URLs: true})
		e.Ingest("git://host.example/path")

		require.Len(t, e.Matches(domain.CategoryURLs), 1)
	})
}

func TestTotal(t *testing.T) {
	e := NewEngine(allEnabled())
	e.Ingest("someone@example.com calls (555) 123-4567 from https://example.com")

	assert.Equal(t, 3, e.Total())
}
