package scrape_test

import (
	"testing"

	"github.com/fwojciec/jobscout"
	"github.com/fwojciec/jobscout/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workUAHTML = `<!DOCTYPE html>
<html><body>
<div id="pjax-jobs-list">
	<div class="card card-hover card-visited job-link">
		<h2 class="my-0"><a href="/jobs/5551/" title="DevOps Engineer">DevOps Engineer</a></h2>
		<div class="mt-xs"><span class="strong-600">40&nbsp;000 грн</span></div>
		<div class="mt-xs">
			<span class="mr-xs"><span class="strong-600">Acme Cloud</span></span>
			<span>Київ</span>
		</div>
		<p class="ellipsis">Kubernetes, Terraform, AWS</p>
		<time datetime="2025-03-15 10:21:00">15 березня</time>
	</div>
	<div class="card card-hover job-link">
		<h2 class="my-0"><a href="/jobs/5552/">Support Specialist</a></h2>
		<div class="mt-xs">
			<span class="mr-xs"><span class="strong-600">Beta Support</span></span>
			<span>Львів</span>
		</div>
		<time>3 квітня</time>
	</div>
	<div class="card card-hover job-link">
		<h2 class="my-0"><a href="/jobs/5553/">Системний адміністратор</a></h2>
		<div class="mt-xs"><span class="strong-600">25 000 грн</span></div>
	</div>
	<div class="card card-hover job-link">
		<div class="mt-xs"><span class="strong-600">Gamma</span></div>
	</div>
	<div class="card card-hover job-link">
		<h2 class="my-0"><a href="/jobs/5555/">QA Engineer</a></h2>
		<div class="mt-xs">
			<span class="mr-xs"><span class="strong-600">Europe Software</span></span>
			<span class="strong-600">$2000</span>
		</div>
	</div>
</div>
</body></html>`

func TestWorkUA_Extract(t *testing.T) {
	t.Parallel()

	t.Run("separates salary from company by currency", func(t *testing.T) {
		t.Parallel()

		results := extractAll(t, scrape.NewWorkUA(scrape.Options{Now: fixedClock}), workUAHTML)
		require.Len(t, results, 5)
		require.True(t, results[0].OK())

		job := results[0].Job
		assert.Equal(t, "DevOps Engineer", job.Title)
		assert.Equal(t, "Acme Cloud", job.Company)
		assert.Equal(t, "40 000 грн", job.Salary)
		assert.Equal(t, "https://www.work.ua/jobs/5551/", job.Link)
		assert.Equal(t, "Київ", job.Location)
		assert.Equal(t, "Kubernetes, Terraform, AWS", job.Description)
	})

	t.Run("reads date from datetime attribute", func(t *testing.T) {
		t.Parallel()

		results := extractAll(t, scrape.NewWorkUA(scrape.Options{Now: fixedClock}), workUAHTML)
		require.True(t, results[0].OK())
		assert.Equal(t, "2025-03-15", results[0].Job.DatePosted)
	})

	t.Run("falls back to printed date", func(t *testing.T) {
		t.Parallel()

		results := extractAll(t, scrape.NewWorkUA(scrape.Options{Now: fixedClock}), workUAHTML)
		require.True(t, results[1].OK())
		assert.Equal(t, "2025-04-03", results[1].Job.DatePosted)
	})

	t.Run("uses sentinel for missing salary", func(t *testing.T) {
		t.Parallel()

		results := extractAll(t, scrape.NewWorkUA(scrape.Options{}), workUAHTML)
		require.True(t, results[1].OK())

		job := results[1].Job
		assert.Equal(t, "Beta Support", job.Company)
		assert.Equal(t, jobscout.NotSpecified, job.Salary)
		assert.Equal(t, "Львів", job.Location)
	})

	t.Run("skips listing whose only span is a salary", func(t *testing.T) {
		t.Parallel()

		results := extractAll(t, scrape.NewWorkUA(scrape.Options{}), workUAHTML)

		assert.False(t, results[2].OK())
		assert.Equal(t, "company not found", results[2].Reason)
	})

	t.Run("skips listing without title", func(t *testing.T) {
		t.Parallel()

		results := extractAll(t, scrape.NewWorkUA(scrape.Options{}), workUAHTML)

		assert.False(t, results[3].OK())
		assert.Equal(t, "title not found", results[3].Reason)
	})

	t.Run("company containing a currency-like word is not a salary", func(t *testing.T) {
		t.Parallel()

		results := extractAll(t, scrape.NewWorkUA(scrape.Options{}), workUAHTML)
		require.True(t, results[4].OK())

		job := results[4].Job
		assert.Equal(t, "Europe Software", job.Company)
		assert.Equal(t, "$2000", job.Salary)
		assert.Equal(t, jobscout.NotSpecified, job.Location)
		assert.Equal(t, jobscout.NotSpecified, job.DatePosted)
	})
}
