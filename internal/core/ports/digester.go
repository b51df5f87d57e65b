package ports

// Digester computes deterministic digests of built artifact trees.
//
//go:generate go run go.uber.org/mock/mockgen -source=digester.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// DigestTree walks the files under root in sorted order and folds their
	// paths and contents into a single digest. Two runs over identical trees
	// yield identical digests.
	DigestTree(root string) (string, error)
}
