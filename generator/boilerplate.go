package generator

// Static boilerplate blocks injected into the generated documents.
// Each string ends with a blank line so blocks concatenate cleanly.

const directoryTree = "```\n" +
	"project/\n" +
	"├── src/\n" +
	"│   ├── app/\n" +
	"│   ├── components/\n" +
	"│   ├── lib/\n" +
	"│   └── stores/\n" +
	"├── migrations/\n" +
	"├── public/\n" +
	"└── package.json\n" +
	"```\n\n"

const starterSchema = "```sql\n" +
	"-- Starter skeleton: replace with entities from the data modeling answers\n" +
	"CREATE TABLE app_user (\n" +
	"  id         UUID PRIMARY KEY,\n" +
	"  created_at TIMESTAMPTZ NOT NULL DEFAULT now()\n" +
	");\n" +
	"```\n\n"

const endpointTemplate = "| Method | Path | Purpose |\n" +
	"|---|---|---|\n" +
	"| GET | /api/resources | List resources |\n" +
	"| POST | /api/resources | Create a resource |\n" +
	"| GET | /api/resources/{id} | Fetch one resource |\n" +
	"| PUT | /api/resources/{id} | Update a resource |\n" +
	"| DELETE | /api/resources/{id} | Delete a resource |\n\n"

const authRecommendation = "Start with session-based or token-based authentication from a " +
	"managed provider rather than a custom scheme. Add role checks at the " +
	"route boundary and keep authorization rules next to the data they guard.\n\n"

const designSystemNotes = "- Pick one component library and stay inside it for the MVP\n" +
	"- Define color, spacing and type scales once, as design tokens\n" +
	"- Design mobile-first; desktop layouts follow from the same components\n" +
	"- Keep every interactive state (hover, focus, disabled, loading) specified\n\n"

const testPyramid = "- **Unit tests**: pure logic, run on every commit\n" +
	"- **Integration tests**: API endpoints against a real database\n" +
	"- **End-to-end tests**: the critical user journeys only\n" +
	"- Gate merges on the unit and integration suites; run e2e nightly\n\n"

const hostingOptions = "- Managed platform (Vercel, Render, Fly.io) for fastest setup\n" +
	"- Container platform (Cloud Run, ECS) when you need custom runtimes\n" +
	"- Managed Postgres (Neon, Supabase, RDS) over self-hosted databases\n\n"

const cicdPipeline = "1. Push to a feature branch runs lint and the unit suite\n" +
	"2. Pull request runs integration tests against a disposable database\n" +
	"3. Merge to main builds and deploys to staging\n" +
	"4. Tagged release promotes the staging build to production\n\n"

const roadmapPhases = "1. **Foundation** — project setup, data model, authentication shell\n" +
	"2. **Core MVP** — the primary user journey end to end\n" +
	"3. **Beta** — onboarding polish, instrumentation, first external users\n" +
	"4. **Launch** — hardening, pricing, public availability\n\n"
