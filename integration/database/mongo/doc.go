// Package mongo provides MongoDB client initialization, health checking, and
// a document-backed page store.
//
// New creates a client with retry logic tuned for managed deployments
// (Atlas cold starts take several seconds) and verifies the connection with
// a ping:
//
//	var cfg mongo.Config
//	if err := env.Parse(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Disconnect(ctx)
//
// NewWithDatabase returns a database handle directly; NewPageStore turns it
// into a page.Store for the navigation layer:
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "cms")
//	if err != nil {
//		log.Fatal(err)
//	}
//	store := mongo.NewPageStore(db, mongo.WithFallbackLanguages("en", "de"))
//	pagesMenu := page.NewMenu(store, languages)
//
// Pages are stored one document per page with their translations embedded
// and a denormalized path index (maintained by Save) so path lookups stay
// single indexed queries.
//
// Healthcheck returns a ping function for readiness probes. The sentinel
// errors (ErrFailedToConnectToMongo, ErrEmptyConnectionURL,
// ErrHealthcheckFailed) can be checked with errors.Is().
package mongo
