// Package copytask predicts the inputs and outputs of Copy tasks.
//
// A Copy task names its sources through SourceFiles or SourceFolders and its
// destinations through DestinationFiles or DestinationFolder. Either side may
// be written per item with a batching token such as
// `$(OutDir)%(Content.RecursiveDir)%(Content.Filename)%(Content.Extension)`,
// which stands for one value per Content item. EvaluateFileExpression turns a
// parameter into a path list and records how much of it was batched;
// Correlate decides how sources pair with destinations and reports them.
package copytask
