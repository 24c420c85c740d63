// Package services holds the AccountStore, the single source of truth for the
// account list.
//
// The store keeps the list in memory and writes the whole list, serialized
// as a JSON array, into one key of a metadata.Repository after every applied
// mutation. The key is read once, when the store is constructed.
//
// Typical usage
//
//	repo := metadata.NewSQLiteRepository(db)
//	store, err := services.NewAccountStore(ctx, repo, services.WithLogger(log))
//	acc, err := store.AddAccount(ctx, models.AccountFormData{
//	    Label: "ops; prod", Type: models.AccountTypeLDAP, Login: "jdoe",
//	})
//	_, err = store.UpdateAccount(ctx, acc.ID, form)
//	err = store.DeleteAccount(ctx, acc.ID) // common.ErrorNotFound if unknown
//
// Unknown ids never change the list or the persisted snapshot. A failed
// write keeps the in-memory change and is reported as common.ErrorPersistence;
// Save retries it.
package services
