package tx

//go:generate mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/signer.go -mock_names=Signer=Signer . Signer
